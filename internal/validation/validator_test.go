package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyport/internal/apperrors"
)

func TestValidateSeat(t *testing.T) {
	tests := []struct {
		name       string
		row        int
		seat       int
		rows       int
		seatsInRow int
		wantFields []string
	}{
		{"valid middle", 5, 3, 10, 6, nil},
		{"valid lower bound", 1, 1, 10, 6, nil},
		{"valid upper bound", 10, 6, 10, 6, nil},
		{"row zero", 0, 3, 10, 6, []string{"row"}},
		{"row too large", 11, 3, 10, 6, []string{"row"}},
		{"seat zero", 5, 0, 10, 6, []string{"seat"}},
		{"seat too large", 5, 7, 10, 6, []string{"seat"}},
		{"negative row", -1, 3, 10, 6, []string{"row"}},
		{"both invalid", 0, 99, 10, 6, []string{"row", "seat"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSeat(tt.row, tt.seat, tt.rows, tt.seatsInRow)

			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))

			var errs apperrors.ValidationErrors
			require.ErrorAs(t, err, &errs)
			require.Len(t, errs, len(tt.wantFields))
			for i, field := range tt.wantFields {
				assert.Equal(t, field, errs[i].Field)
			}
		})
	}
}

func TestValidateSeatMessagesIncludeRange(t *testing.T) {
	err := ValidateSeat(0, 99, 20, 6)
	require.Error(t, err)

	var errs apperrors.ValidationErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 2)

	assert.Equal(t, "row must be in the range [1, 20]", errs[0].Message)
	assert.Equal(t, "seat must be in the range [1, 6]", errs[1].Message)
}

func TestValidateAirplane(t *testing.T) {
	assert.NoError(t, ValidateAirplane(1, 1))
	assert.NoError(t, ValidateAirplane(30, 6))

	err := ValidateAirplane(0, 6)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	err = ValidateAirplane(0, 0)
	var errs apperrors.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
}

func TestValidateSchedule(t *testing.T) {
	departure := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateSchedule(departure, departure.Add(2*time.Hour)))

	err := ValidateSchedule(departure, departure)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	err = ValidateSchedule(departure, departure.Add(-time.Hour))
	assert.Error(t, err)
}

func TestValidateRoute(t *testing.T) {
	assert.NoError(t, ValidateRoute(1, 2))

	err := ValidateRoute(7, 7)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("departure_date", "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseDate("departure_date", "09/01/2026")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	_, err = ParseDate("departure_date", "not-a-date")
	assert.Error(t, err)
}

func TestParsePagination(t *testing.T) {
	page, size, err := ParsePagination("", "", 3, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, 3, size)

	page, size, err = ParsePagination("2", "10", 3, 100)
	require.NoError(t, err)
	assert.Equal(t, 2, page)
	assert.Equal(t, 10, size)

	_, size, err = ParsePagination("1", "500", 3, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, size)

	_, _, err = ParsePagination("0", "", 3, 100)
	assert.Error(t, err)

	_, _, err = ParsePagination("abc", "", 3, 100)
	assert.Error(t, err)

	_, _, err = ParsePagination("1", "-5", 3, 100)
	assert.Error(t, err)
}
