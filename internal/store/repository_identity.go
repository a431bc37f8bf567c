package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-foodmap/internal/logger"
	"github.com/MKhiriev/go-foodmap/models"
	sq "github.com/Masterminds/squirrel"
)

var identityColumns = []string{
	"id",
	"first_name",
	"last_name",
	"email",
	"password_hash",
	"location_type",
	"longitude",
	"latitude",
	"created_at",
}

// identityRepository is the database/sql implementation of
// [IdentityRepository] over the "identities" table. It works on both
// PostgreSQL and SQLite; the placeholder format comes from [DB].
type identityRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewIdentityRepository constructs an [IdentityRepository] backed by the
// provided database connection and logger.
func NewIdentityRepository(db *DB, logger *logger.Logger) IdentityRepository {
	logger.Debug().Msg("creating identity repository")
	return &identityRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts identity and returns it unchanged. ID and CreatedAt are
// assigned by the caller.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver error → [ErrExecutingStatement].
func (r *identityRepository) Create(ctx context.Context, identity models.Identity) (models.Identity, error) {
	log := logger.FromContext(ctx)

	var locType sql.NullString
	var lng, lat sql.NullFloat64
	if identity.Location != nil {
		locType = sql.NullString{String: identity.Location.Type, Valid: true}
		lng = sql.NullFloat64{Float64: identity.Location.Longitude(), Valid: true}
		lat = sql.NullFloat64{Float64: identity.Location.Latitude(), Valid: true}
	}

	query, args, err := r.db.builder.
		Insert(identity.TableName()).
		Columns(identityColumns...).
		Values(
			identity.ID,
			identity.FirstName,
			identity.LastName,
			identity.Email,
			identity.PasswordHash,
			locType,
			lng,
			lat,
			identity.CreatedAt.UTC(),
		).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*identityRepository.Create").Msg("error building insert query")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			log.Debug().Str("func", "*identityRepository.Create").Str("email", identity.Email).Msg("email already exists")
			return models.Identity{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*identityRepository.Create").Msg("error inserting identity")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return identity, nil
}

func (r *identityRepository) FindByEmail(ctx context.Context, email string) (models.Identity, error) {
	return r.findOne(ctx, sq.Eq{"email": email})
}

func (r *identityRepository) FindByID(ctx context.Context, id string) (models.Identity, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

// findOne selects the first identity matching where.
//
// Error handling:
//   - no rows → [ErrIdentityNotFound].
//   - scan failure → [ErrScanningRow].
//   - any other driver error → [ErrExecutingQuery].
func (r *identityRepository) findOne(ctx context.Context, where sq.Eq) (models.Identity, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(identityColumns...).
		From(models.Identity{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*identityRepository.findOne").Msg("error building select query")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		identity models.Identity
		locType  sql.NullString
		lng, lat sql.NullFloat64
	)

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*identityRepository.findOne").Msg("error querying identity")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	err = row.Scan(
		&identity.ID,
		&identity.FirstName,
		&identity.LastName,
		&identity.Email,
		&identity.PasswordHash,
		&locType,
		&lng,
		&lat,
		&identity.CreatedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Identity{}, ErrIdentityNotFound
	case err != nil:
		log.Err(err).Str("func", "*identityRepository.findOne").Msg("error scanning identity")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if locType.Valid {
		identity.Location = &models.Location{
			Type:        locType.String,
			Coordinates: []float64{lng.Float64, lat.Float64},
		}
	}

	return identity, nil
}
