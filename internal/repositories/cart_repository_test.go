package repository_test

import (
	"database/sql"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/boxpack/boxpack/internal/models"
	repository "github.com/boxpack/boxpack/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewCartRepo(db)
	ctx := t.Context()

	t.Run("CreateCart", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			cart := &models.Cart{ID: uuid.New(), UserID: uuid.New()}
			now := time.Now()

			expectedSQL := regexp.QuoteMeta(`INSERT INTO carts (id, user_id, lines, total_amount, created_at, updated_at)`)

			mock.ExpectQuery(expectedSQL).
				WithArgs(cart.ID, cart.UserID, sqlmock.AnyArg(), cart.TotalAmount).
				WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
					AddRow(cart.ID, now, now))

			// Act
			err := repo.CreateCart(ctx, cart)

			// Assert
			require.NoError(t, err)
			assert.WithinDuration(t, now, cart.CreatedAt, time.Second)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetCartByUserID", func(t *testing.T) {
		t.Run("Success - lines round-trip through JSON", func(t *testing.T) {
			// Arrange
			userID := uuid.New()
			cartID := uuid.New()
			lineID := uuid.New()
			now := time.Now()

			lines := []models.CartLine{
				{
					ID:       lineID,
					Quantity: 2,
					Snapshot: models.QuoteSnapshot{
						WidthMM: 600, DepthMM: 400, HeightMM: 400,
						Quantity:  1,
						Breakdown: models.PriceBreakdown{TotalPrice: 13895},
					},
				},
			}
			linesJSON, _ := json.Marshal(lines)

			expectedSQL := regexp.QuoteMeta(`SELECT id, user_id, lines, total_amount, created_at, updated_at
		FROM carts`)

			rows := sqlmock.NewRows([]string{"id", "user_id", "lines", "total_amount", "created_at", "updated_at"}).
				AddRow(cartID, userID, linesJSON, 27790.0, now, now)

			mock.ExpectQuery(expectedSQL).WithArgs(userID).WillReturnRows(rows)

			// Act
			cart, err := repo.GetCartByUserID(ctx, userID)

			// Assert
			require.NoError(t, err)
			require.Len(t, cart.Lines, 1)
			assert.Equal(t, lineID, cart.Lines[0].ID)
			assert.Equal(t, 2, cart.Lines[0].Quantity)
			assert.Equal(t, float64(13895), cart.Lines[0].Snapshot.Breakdown.TotalPrice)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NotFound", func(t *testing.T) {
			// Arrange
			userID := uuid.New()

			expectedSQL := regexp.QuoteMeta(`SELECT id, user_id, lines, total_amount, created_at, updated_at
		FROM carts`)

			mock.ExpectQuery(expectedSQL).WithArgs(userID).WillReturnError(sql.ErrNoRows)

			// Act
			cart, err := repo.GetCartByUserID(ctx, userID)

			// Assert
			assert.Nil(t, cart)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("UpdateCart", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			cart := &models.Cart{
				ID:          uuid.New(),
				UserID:      uuid.New(),
				TotalAmount: 5000,
			}
			now := time.Now()

			expectedSQL := regexp.QuoteMeta(`UPDATE carts
		SET lines = $1, total_amount = $2, updated_at = NOW()`)

			mock.ExpectQuery(expectedSQL).
				WithArgs(sqlmock.AnyArg(), cart.TotalAmount, cart.ID).
				WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

			// Act
			err := repo.UpdateCart(ctx, cart)

			// Assert
			require.NoError(t, err)
			assert.WithinDuration(t, now, cart.UpdatedAt, time.Second)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})
}
