package folio

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/resitrack/backend/internal/domain/shared"
)

const (
	// ReservationQuota caps manual reservations per (site, month, year) bucket.
	ReservationQuota = 10

	// QuotaBucketMonth is the single monthly bucket reservations are counted
	// against. The month column and API parameters stay, so a real per-month
	// rule can be introduced without a schema change.
	QuotaBucketMonth = 1
)

// serialPattern matches <PREFIX>-<SEQ>-<YEAR>, e.g. "CDMX-042-2026".
var serialPattern = regexp.MustCompile(`^([A-Z]{2,5})-(\d{3,})-(\d{4})$`)

// SerialNumber is a validated manifest folio.
type SerialNumber struct {
	Prefix   string
	Sequence int64
	Year     int
}

// ParseSerialNumber validates and decomposes a raw serial string
func ParseSerialNumber(raw string) (SerialNumber, error) {
	m := serialPattern.FindStringSubmatch(raw)
	if m == nil {
		return SerialNumber{}, shared.NewDomainError("INVALID_INPUT",
			fmt.Sprintf("serial number %q must match PREFIX-SEQ-YEAR (e.g. CDMX-042-2026)", raw))
	}

	seq, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return SerialNumber{}, shared.NewDomainError("INVALID_INPUT", "serial sequence segment is not a number")
	}

	year, _ := strconv.Atoi(m[3])

	return SerialNumber{
		Prefix:   m[1],
		Sequence: seq,
		Year:     year,
	}, nil
}

// FormatSerialNumber renders a serial in canonical form, zero-padding the
// sequence to three digits
func FormatSerialNumber(prefix string, sequence int64, year int) string {
	return fmt.Sprintf("%s-%03d-%d", prefix, sequence, year)
}

// String returns the canonical string form
func (s SerialNumber) String() string {
	return FormatSerialNumber(s.Prefix, s.Sequence, s.Year)
}

// IsValidSerialNumber reports whether raw is a well-formed serial
func IsValidSerialNumber(raw string) bool {
	return serialPattern.MatchString(raw)
}
