// seed genera un script SQL para poblar el inventario de una organización a
// partir de un CSV exportado de un sistema anterior.
//
// Uso: go run ./cmd/seed <organization_id> [ruta/inventario.csv]
// Por defecto busca inventario.csv en el directorio actual. Los exports viejos
// suelen venir en ISO-8859-1; con -latin1 se decodifican antes de parsear.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_inventory.sql
//
// Columnas esperadas: SKU, Name, Category, Supplier, Quantity, Unit, UnitCost,
// SellingPrice, ReorderLevel. Categorías y proveedores se crean una sola vez.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type itemRow struct {
	sku, name, category, supplier, unit string
	quantity, reorderLevel              int64
	unitCost, sellingPrice              string
}

func main() {
	latin1 := flag.Bool("latin1", false, "el CSV viene en ISO-8859-1 en lugar de UTF-8")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Uso: seed [-latin1] <organization_id> [inventario.csv]")
		os.Exit(1)
	}
	orgID := flag.Arg(0)
	csvPath := "inventario.csv"
	if flag.NArg() > 1 {
		csvPath = flag.Arg(1)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var input io.Reader = f
	if *latin1 {
		input = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}

	rows, err := parseRows(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parsear CSV: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_inventory.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	categories, suppliers := writeSQL(out, orgID, rows)
	fmt.Printf("Generado %s: %d ítems, %d categorías, %d proveedores\n",
		outPath, len(rows), categories, suppliers)
}

func parseRows(input io.Reader) ([]itemRow, error) {
	r := csv.NewReader(input)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"sku", "name", "quantity"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("falta la columna %q", required)
		}
	}

	get := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []itemRow
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		sku := get(record, "sku")
		name := get(record, "name")
		if sku == "" || name == "" {
			continue
		}
		qty, _ := strconv.ParseInt(get(record, "quantity"), 10, 64)
		reorder, _ := strconv.ParseInt(get(record, "reorderlevel"), 10, 64)
		rows = append(rows, itemRow{
			sku:          sku,
			name:         name,
			category:     get(record, "category"),
			supplier:     get(record, "supplier"),
			unit:         defaultStr(get(record, "unit"), "pcs"),
			quantity:     qty,
			reorderLevel: reorder,
			unitCost:     defaultStr(get(record, "unitcost"), "0"),
			sellingPrice: defaultStr(get(record, "sellingprice"), "0"),
		})
	}
	return rows, nil
}

// writeSQL emite el script: categorías y proveedores únicos primero, luego los
// ítems con subqueries a sus referencias. Devuelve cuántos de cada uno.
func writeSQL(out io.Writer, orgID string, rows []itemRow) (categories, suppliers int) {
	catSet := make(map[string]struct{})
	supSet := make(map[string]struct{})
	for _, row := range rows {
		if row.category != "" {
			catSet[row.category] = struct{}{}
		}
		if row.supplier != "" {
			supSet[row.supplier] = struct{}{}
		}
	}

	fmt.Fprintf(out, "-- Seed de inventario para la organización %s\n", orgID)
	fmt.Fprintln(out, "-- Generado con cmd/seed desde CSV")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "-- 1. Categorías")
	for _, name := range sortedKeys(catSet) {
		fmt.Fprintf(out,
			"INSERT INTO categories (id, organization_id, name, color, created_at, updated_at)\n"+
				"VALUES (gen_random_uuid(), '%s', '%s', '#3B82F6', now(), now())\n"+
				"ON CONFLICT DO NOTHING;\n",
			orgID, escapeSQL(name))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "-- 2. Proveedores")
	for _, name := range sortedKeys(supSet) {
		fmt.Fprintf(out,
			"INSERT INTO suppliers (id, organization_id, name, created_at, updated_at)\n"+
				"VALUES (gen_random_uuid(), '%s', '%s', now(), now())\n"+
				"ON CONFLICT DO NOTHING;\n",
			orgID, escapeSQL(name))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "-- 3. Ítems")
	for _, row := range rows {
		fmt.Fprintf(out,
			"INSERT INTO inventory_items (id, organization_id, sku, name, category_id, supplier_id, quantity, unit, unit_cost, selling_price, reorder_level, reorder_qty, status, created_at, updated_at)\n"+
				"SELECT gen_random_uuid(), '%s', '%s', '%s',\n"+
				"  (SELECT id FROM categories WHERE organization_id = '%s' AND name = '%s'),\n"+
				"  (SELECT id FROM suppliers WHERE organization_id = '%s' AND name = '%s'),\n"+
				"  %d, '%s', %s, %s, %d, 0, '%s', now(), now()\n"+
				"ON CONFLICT (organization_id, sku) DO NOTHING;\n",
			orgID, escapeSQL(row.sku), escapeSQL(row.name),
			orgID, escapeSQL(row.category),
			orgID, escapeSQL(row.supplier),
			row.quantity, escapeSQL(row.unit), sqlNumeric(row.unitCost), sqlNumeric(row.sellingPrice),
			row.reorderLevel, itemStatus(row.quantity))
	}

	return len(catSet), len(supSet)
}

func itemStatus(quantity int64) string {
	if quantity == 0 {
		return "out_of_stock"
	}
	return "active"
}

// sqlNumeric valida que el string sea un número antes de interpolarlo.
func sqlNumeric(s string) string {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return "0"
	}
	return s
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func defaultStr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
