package validation

import (
	"strconv"
	"time"

	"skyport/internal/apperrors"
)

const dateLayout = "2006-01-02"

// ValidateSeat checks a requested (row, seat) position against an airplane's
// seating grid. Both coordinates are checked so a request that is wrong in
// both reports both fields.
func ValidateSeat(row, seat, rows, seatsInRow int) error {
	var errs apperrors.ValidationErrors

	if row < 1 || row > rows {
		errs = append(errs, apperrors.NewValidation("row",
			"row must be in the range [1, %d]", rows))
	}
	if seat < 1 || seat > seatsInRow {
		errs = append(errs, apperrors.NewValidation("seat",
			"seat must be in the range [1, %d]", seatsInRow))
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateAirplane checks that a seating grid has at least one row and one
// seat per row.
func ValidateAirplane(rows, seatsInRow int) error {
	var errs apperrors.ValidationErrors

	if rows < 1 {
		errs = append(errs, apperrors.NewValidation("rows",
			"rows must be at least 1"))
	}
	if seatsInRow < 1 {
		errs = append(errs, apperrors.NewValidation("seats_in_row",
			"seats_in_row must be at least 1"))
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateSchedule checks that a flight lands after it takes off.
func ValidateSchedule(departure, arrival time.Time) error {
	if !arrival.After(departure) {
		return apperrors.NewValidation("arrival_time",
			"arrival_time must be after departure_time")
	}
	return nil
}

// ValidateRoute checks that a route connects two distinct airports.
func ValidateRoute(sourceID, destinationID int64) error {
	if sourceID == destinationID {
		return apperrors.NewValidation("destination_id",
			"source and destination airports must differ")
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD query parameter.
func ParseDate(field, value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidation(field,
			"must be a date in the format YYYY-MM-DD")
	}
	return parsed, nil
}

// ParsePagination parses page and page_size query parameters, applying the
// default size when absent and capping the size at max.
func ParsePagination(pageStr, sizeStr string, defaultSize, maxSize int) (int, int, error) {
	page := 1
	if pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil || parsed < 1 {
			return 0, 0, apperrors.NewValidation("page",
				"page must be a positive integer")
		}
		page = parsed
	}

	size := defaultSize
	if sizeStr != "" {
		parsed, err := strconv.Atoi(sizeStr)
		if err != nil || parsed < 1 {
			return 0, 0, apperrors.NewValidation("page_size",
				"page_size must be a positive integer")
		}
		size = parsed
	}
	if size > maxSize {
		size = maxSize
	}

	return page, size, nil
}
