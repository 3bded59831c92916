package store

import (
	"context"
	"database/sql"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/buildsim/archetype-cli/internal/typeelement"
)

// SQLiteStore reads the database from a normalized SQLite file using
// modernc.org/sqlite. It can also create the schema and import bindings,
// which backs the `db import` command.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL
// mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS materials (
	id            INTEGER PRIMARY KEY,
	name          TEXT NOT NULL,
	density       REAL NOT NULL,
	conductivity  REAL NOT NULL,
	heat_capacity REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS type_elements (
	key               TEXT PRIMARY KEY,
	age_lower         INTEGER NOT NULL,
	age_upper         INTEGER NOT NULL,
	construction_type TEXT NOT NULL,
	inner_radiation   REAL NOT NULL DEFAULT 0,
	inner_convection  REAL NOT NULL DEFAULT 0,
	outer_radiation   REAL NOT NULL DEFAULT 0,
	outer_convection  REAL NOT NULL DEFAULT 0,
	g_value           REAL NOT NULL DEFAULT 0,
	a_conv            REAL NOT NULL DEFAULT 0,
	shading_g_total   REAL NOT NULL DEFAULT 0,
	shading_max_irr   REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS type_element_layers (
	element_key TEXT NOT NULL REFERENCES type_elements(key),
	layer_id    INTEGER NOT NULL,
	thickness   REAL NOT NULL,
	material_id INTEGER NOT NULL REFERENCES materials(id),
	PRIMARY KEY (element_key, layer_id)
);
`

// Migrate creates the schema if it does not exist.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqliteMigration); err != nil {
		return eris.Wrap(err, "sqlite: migrate")
	}
	return nil
}

// Import writes the bindings into the database, replacing existing rows.
func (s *SQLiteStore) Import(ctx context.Context, b *typeelement.Bindings) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin import")
	}
	defer tx.Rollback() //nolint:errcheck

	for _, table := range []string{"type_element_layers", "type_elements", "materials"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return eris.Wrapf(err, "sqlite: clear %s", table)
		}
	}

	for _, mat := range b.Materials() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO materials (id, name, density, conductivity, heat_capacity) VALUES (?, ?, ?, ?, ?)`,
			mat.ID, mat.Name, mat.Density, mat.ThermalConductivity, mat.HeatCapacity,
		); err != nil {
			return eris.Wrapf(err, "sqlite: insert material %d", mat.ID)
		}
	}

	for _, key := range b.Keys() {
		rec, _ := b.Record(key)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO type_elements (
				key, age_lower, age_upper, construction_type,
				inner_radiation, inner_convection, outer_radiation, outer_convection,
				g_value, a_conv, shading_g_total, shading_max_irr
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.Key, rec.AgeRange[0], rec.AgeRange[1], rec.ConstructionType,
			rec.InnerRadiation, rec.InnerConvection, rec.OuterRadiation, rec.OuterConvection,
			rec.GValue, rec.AConv, rec.ShadingGTotal, rec.ShadingMaxIrr,
		); err != nil {
			return eris.Wrapf(err, "sqlite: insert record %q", key)
		}
		for _, layer := range rec.Layers {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO type_element_layers (element_key, layer_id, thickness, material_id) VALUES (?, ?, ?, ?)`,
				rec.Key, layer.ID, layer.Thickness, layer.MaterialID,
			); err != nil {
				return eris.Wrapf(err, "sqlite: insert layer %d of %q", layer.ID, key)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return eris.Wrap(err, "sqlite: commit import")
	}
	return nil
}

// Load reads all records and materials into bindings.
func (s *SQLiteStore) Load(ctx context.Context) (*typeelement.Bindings, error) {
	materials, err := s.loadMaterials(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}
	b, err := typeelement.NewBindings(records, materials)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: index database")
	}
	return b, nil
}

func (s *SQLiteStore) loadMaterials(ctx context.Context) ([]typeelement.MaterialSpec, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, density, conductivity, heat_capacity FROM materials`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query materials")
	}
	defer rows.Close()

	var materials []typeelement.MaterialSpec
	for rows.Next() {
		var m typeelement.MaterialSpec
		if err := rows.Scan(&m.ID, &m.Name, &m.Density, &m.ThermalConductivity, &m.HeatCapacity); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan material")
		}
		materials = append(materials, m)
	}
	return materials, rows.Err()
}

func (s *SQLiteStore) loadRecords(ctx context.Context) ([]typeelement.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, age_lower, age_upper, construction_type,
			inner_radiation, inner_convection, outer_radiation, outer_convection,
			g_value, a_conv, shading_g_total, shading_max_irr
		FROM type_elements`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query type elements")
	}
	defer rows.Close()

	var records []typeelement.Record
	index := map[string]int{}
	for rows.Next() {
		var rec typeelement.Record
		if err := rows.Scan(
			&rec.Key, &rec.AgeRange[0], &rec.AgeRange[1], &rec.ConstructionType,
			&rec.InnerRadiation, &rec.InnerConvection, &rec.OuterRadiation, &rec.OuterConvection,
			&rec.GValue, &rec.AConv, &rec.ShadingGTotal, &rec.ShadingMaxIrr,
		); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan type element")
		}
		index[rec.Key] = len(records)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate type elements")
	}

	layerRows, err := s.db.QueryContext(ctx,
		`SELECT element_key, layer_id, thickness, material_id
		FROM type_element_layers ORDER BY element_key, layer_id`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query layers")
	}
	defer layerRows.Close()

	for layerRows.Next() {
		var key string
		var spec typeelement.LayerSpec
		if err := layerRows.Scan(&key, &spec.ID, &spec.Thickness, &spec.MaterialID); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan layer")
		}
		i, ok := index[key]
		if !ok {
			return nil, eris.Errorf("sqlite: layer references unknown record %q", key)
		}
		records[i].Layers = append(records[i].Layers, spec)
	}
	return records, layerRows.Err()
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
