package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMigrationsDirValidates(t *testing.T) {
	if err := ValidateDir("migrations"); err != nil {
		t.Fatalf("migrations dir failed validation: %v", err)
	}
}

func TestMigrationsCoverImportTables(t *testing.T) {
	entries, err := os.ReadDir("migrations")
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}

	wanted := map[string]bool{
		"CREATE TABLE pedidos":      false,
		"CREATE TABLE itens_pedido": false,
		"pedidos_numero_pedido_key": false,
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		b, err := os.ReadFile(filepath.Join("migrations", e.Name()))
		if err != nil {
			t.Fatalf("read migration %s: %v", e.Name(), err)
		}
		for needle := range wanted {
			if strings.Contains(string(b), needle) {
				wanted[needle] = true
			}
		}
	}

	for needle, found := range wanted {
		if !found {
			t.Fatalf("no migration contains %q", needle)
		}
	}
}
