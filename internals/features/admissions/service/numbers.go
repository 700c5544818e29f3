package service

import (
	"fmt"
	"time"
)

// Student number formats. The sequence restarts each admission year and
// is zero-padded to five digits.
//
//	registration: MU/<yy>/<seq>   e.g. MU/26/00042
//	roll:         <yy><seq>       e.g. 2600042

func FormatRegistrationNo(year int, seq int) string {
	return fmt.Sprintf("MU/%02d/%05d", year%100, seq)
}

func FormatRollNo(year int, seq int) string {
	return fmt.Sprintf("%02d%05d", year%100, seq)
}

// AdmissionYear is the calendar year the numbers are minted in.
func AdmissionYear(now time.Time) int {
	return now.Year()
}
