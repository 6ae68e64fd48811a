package importer

import "context"

// Group is one order's worth of flat rows, in their original relative order.
// Rows without an order number share the empty key; the source behaves that
// way and it is preserved here.
type Group struct {
	Key  string
	Rows []RawRecord
}

// EachGroup regroups the source's flat rows by order number and streams the
// groups to fn in order of each key's first appearance. No row is dropped.
// Rows for one order may interleave with other orders, so a group is only
// complete once the whole source has been read; rows are buffered per key and
// groups are then emitted one at a time.
func EachGroup(ctx context.Context, src Source, fn func(Group) error) error {
	byKey := make(map[string]int)

	var groups []Group
	err := src.Each(ctx, func(rec RawRecord) error {
		key := rec.Get(colOrderNumber)
		idx, ok := byKey[key]
		if !ok {
			idx = len(groups)
			byKey[key] = idx
			groups = append(groups, Group{Key: key})
		}
		groups[idx].Rows = append(groups[idx].Rows, rec)
		return nil
	})
	if err != nil {
		return err
	}

	for _, g := range groups {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(g); err != nil {
			return err
		}
	}
	return nil
}

// CollectGroups drains the source into a slice of groups.
func CollectGroups(ctx context.Context, src Source) ([]Group, error) {
	var out []Group
	err := EachGroup(ctx, src, func(g Group) error {
		out = append(out, g)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
