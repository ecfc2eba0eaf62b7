package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resitrack/backend/internal/domain/folio"
	"github.com/resitrack/backend/internal/domain/manifest"
	"github.com/resitrack/backend/internal/domain/shared"
)

// issuedManifest builds a complete manifest with every residue line non-zero
func issuedManifest(t *testing.T, serial string) *manifest.Manifest {
	t.Helper()

	sums := map[string]decimal.Decimal{}
	for i, cat := range manifest.Categories() {
		sums[cat.Code] = decimal.NewFromInt(int64(i + 1))
	}

	m, err := manifest.NewManifest(manifest.NewManifestParams{
		SerialNumber:        serial,
		GeneratorSiteID:     uuid.New(),
		DriverID:            uuid.New(),
		VehicleID:           uuid.New(),
		DestinationID:       uuid.New(),
		PeriodStart:         time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:           time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		IssueDate:           time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Residues:            manifest.NewBreakdown(sums),
		GeneratorSnapshot:   manifest.PartySnapshot{Name: "Plaza Central", Address: "Av. Reforma 100"},
		IssuerSnapshot:      manifest.IssuerSnapshot{Name: "ResiTrack S.A. de C.V.", Address: "Calle 5 No. 22", RegistryNumber: "AMB-2020-117"},
		DriverName:          "J. Morales",
		VehicleSnapshot:     manifest.VehicleSnapshot{Plates: "ABC-123-D", Model: "Kenworth T380"},
		DestinationSnapshot: manifest.DestinationSnapshot{Name: "Recicladora Norte", AuthorizationCode: "DST-009"},
	})
	require.NoError(t, err)
	return m
}

func TestGormManifestRepository_Create(t *testing.T) {
	// gorm backfills default-valued columns through RETURNING on postgres, so
	// both inserts surface as queries on the driver.
	expectManifestInsert := func(mock sqlmock.Sqlmock) {
		mock.ExpectQuery(`INSERT INTO "manifests"`).
			WillReturnRows(sqlmock.NewRows([]string{"version", "pdf_generated"}).AddRow(1, false))
		mock.ExpectQuery(`INSERT INTO "manifest_residues"`).
			WillReturnRows(sqlmock.NewRows([]string{"kilograms"}))
	}

	t.Run("inserts manifest and residues for an automatic serial", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormManifestRepository(gormDB)

		m := issuedManifest(t, "CDMX-043-2026")

		mock.ExpectBegin()
		expectManifestInsert(mock)
		mock.ExpectCommit()

		err := repo.Create(context.Background(), m, "")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("consumes the reservation inside the same transaction", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormManifestRepository(gormDB)

		m := issuedManifest(t, "CDMX-042-2026")

		mock.ExpectBegin()
		expectManifestInsert(mock)
		mock.ExpectExec(`UPDATE "folio_reservations" SET .* WHERE serial_number = \$\d+ AND used = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Create(context.Background(), m, "CDMX-042-2026")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back the insert when the reservation was already consumed", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormManifestRepository(gormDB)

		m := issuedManifest(t, "CDMX-042-2026")

		mock.ExpectBegin()
		expectManifestInsert(mock)
		mock.ExpectExec(`UPDATE "folio_reservations" SET .* WHERE serial_number = \$\d+ AND used = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Create(context.Background(), m, "CDMX-042-2026")

		assert.ErrorIs(t, err, folio.ErrAlreadyUsed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormManifestRepository_UpdatePDF(t *testing.T) {
	t.Run("records pdf bookkeeping", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormManifestRepository(gormDB)

		id := uuid.New()
		path := "/documents/CDMX-042-2026.pdf"

		mock.ExpectExec(`UPDATE "manifests" SET .* WHERE id = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdatePDF(context.Background(), id, true, &path)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for missing manifest", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormManifestRepository(gormDB)

		mock.ExpectExec(`UPDATE "manifests" SET .* WHERE id = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdatePDF(context.Background(), uuid.New(), false, nil)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormManifestRepository_Delete(t *testing.T) {
	t.Run("releases bound reservation before deleting the manifest", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormManifestRepository(gormDB)

		id := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "folio_reservations" SET .* WHERE bound_manifest_id = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM "manifest_residues" WHERE manifest_id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 9))
		mock.ExpectExec(`DELETE FROM "manifests" WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Delete(context.Background(), id)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when the manifest does not exist", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormManifestRepository(gormDB)

		id := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "folio_reservations" SET .* WHERE bound_manifest_id = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM "manifest_residues" WHERE manifest_id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM "manifests" WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Delete(context.Background(), id)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
