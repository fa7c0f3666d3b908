package partes

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// YearSuffix returns the two-digit year bucket for numero_parte, e.g. "24".
// "25" will come around again in 2125; the business accepted that.
func YearSuffix(now time.Time) string {
	return fmt.Sprintf("%02d", now.Year()%100)
}

// NextNumero computes the next numero_parte inside a year bucket.
// ultimo is the highest existing numero in the bucket ("" when the bucket is
// empty) and the result is always NNNNN/YY, zero padded to five digits.
//
// A malformed ultimo is a data-integrity problem: the error aborts the
// create instead of quietly restarting the bucket at 00001.
func NextNumero(ultimo string, yearSuffix string) (string, error) {
	const op = "service.partes.NextNumero"

	next := 1
	if ultimo != "" {
		prefix, _, _ := strings.Cut(ultimo, "/")
		n, err := strconv.Atoi(prefix)
		if err != nil {
			return "", fmt.Errorf("%s: numero_parte malformado %q: %w", op, ultimo, err)
		}
		next = n + 1
	}

	return fmt.Sprintf("%05d/%s", next, yearSuffix), nil
}
