package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/buildsim/archetype-cli/internal/typeelement"
)

// Pool is the subset of pgxpool.Pool the store uses. pgxmock satisfies it in
// tests.
type Pool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Close()
}

// PostgresStore reads the database from Postgres. Schema matches the SQLite
// backend; the shared authoritative copy of a normative database usually
// lives here.
type PostgresStore struct {
	pool Pool
}

// NewPostgres connects a pool to the given connection string.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: connect")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

// NewPostgresFromPool wraps an existing pool; used by tests.
func NewPostgresFromPool(pool Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS materials (
	id            INTEGER PRIMARY KEY,
	name          TEXT NOT NULL,
	density       DOUBLE PRECISION NOT NULL,
	conductivity  DOUBLE PRECISION NOT NULL,
	heat_capacity DOUBLE PRECISION NOT NULL
);

CREATE TABLE IF NOT EXISTS type_elements (
	key               TEXT PRIMARY KEY,
	age_lower         INTEGER NOT NULL,
	age_upper         INTEGER NOT NULL,
	construction_type TEXT NOT NULL,
	inner_radiation   DOUBLE PRECISION NOT NULL DEFAULT 0,
	inner_convection  DOUBLE PRECISION NOT NULL DEFAULT 0,
	outer_radiation   DOUBLE PRECISION NOT NULL DEFAULT 0,
	outer_convection  DOUBLE PRECISION NOT NULL DEFAULT 0,
	g_value           DOUBLE PRECISION NOT NULL DEFAULT 0,
	a_conv            DOUBLE PRECISION NOT NULL DEFAULT 0,
	shading_g_total   DOUBLE PRECISION NOT NULL DEFAULT 0,
	shading_max_irr   DOUBLE PRECISION NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS type_element_layers (
	element_key TEXT NOT NULL REFERENCES type_elements(key),
	layer_id    INTEGER NOT NULL,
	thickness   DOUBLE PRECISION NOT NULL,
	material_id INTEGER NOT NULL REFERENCES materials(id),
	PRIMARY KEY (element_key, layer_id)
);
`

// Migrate creates the schema if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, postgresMigration); err != nil {
		return eris.Wrap(err, "postgres: migrate")
	}
	return nil
}

// Load reads all records and materials into bindings.
func (s *PostgresStore) Load(ctx context.Context) (*typeelement.Bindings, error) {
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
		return nil, eris.Wrap(err, "postgres: index database")
	}
	return b, nil
}

func (s *PostgresStore) loadMaterials(ctx context.Context) ([]typeelement.MaterialSpec, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, density, conductivity, heat_capacity FROM materials`)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: query materials")
	}
	defer rows.Close()

	var materials []typeelement.MaterialSpec
	for rows.Next() {
		var m typeelement.MaterialSpec
		if err := rows.Scan(&m.ID, &m.Name, &m.Density, &m.ThermalConductivity, &m.HeatCapacity); err != nil {
			return nil, eris.Wrap(err, "postgres: scan material")
		}
		materials = append(materials, m)
	}
	return materials, rows.Err()
}

func (s *PostgresStore) loadRecords(ctx context.Context) ([]typeelement.Record, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT key, age_lower, age_upper, construction_type,
			inner_radiation, inner_convection, outer_radiation, outer_convection,
			g_value, a_conv, shading_g_total, shading_max_irr
		FROM type_elements`)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: query type elements")
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
			return nil, eris.Wrap(err, "postgres: scan type element")
		}
		index[rec.Key] = len(records)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "postgres: iterate type elements")
	}

	layerRows, err := s.pool.Query(ctx,
		`SELECT element_key, layer_id, thickness, material_id
		FROM type_element_layers ORDER BY element_key, layer_id`)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: query layers")
	}
	defer layerRows.Close()

	for layerRows.Next() {
		var key string
		var spec typeelement.LayerSpec
		if err := layerRows.Scan(&key, &spec.ID, &spec.Thickness, &spec.MaterialID); err != nil {
			return nil, eris.Wrap(err, "postgres: scan layer")
		}
		i, ok := index[key]
		if !ok {
			return nil, eris.Errorf("postgres: layer references unknown record %q", key)
		}
		records[i].Layers = append(records[i].Layers, spec)
	}
	return records, layerRows.Err()
}

// Close releases the pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
