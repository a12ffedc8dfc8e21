package amortize

import (
	"fmt"
	"strings"

	"github.com/Husnain585/Calculator-sub000/pkg/format"
)

// CSVString renders the amortization schedule in comma-separated value
// format suitable for download.
func CSVString(result Result) string {
	var builder strings.Builder
	builder.WriteString(`"period","payment","interest","principal","remaining balance","cumulative interest"` + "\n")
	for _, entry := range result.Schedule {
		builder.WriteString(fmt.Sprintf("%d,%.2f,%.2f,%.2f,%.2f,%.2f\n",
			entry.Period, result.MonthlyPayment, entry.Interest, entry.Principal,
			entry.RemainingBalance, entry.CumulativeInterest))
	}
	return builder.String()
}

// PrettyString renders a human-readable schedule table with thousands
// separators.
func PrettyString(result Result) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Monthly payment: %s | Total interest: %s\n",
		format.Currency(result.MonthlyPayment), format.Currency(result.TotalInterest)))
	builder.WriteString("Period | Interest | Principal | Balance\n")
	builder.WriteString("______ | ________ | _________ | _______\n")
	for _, entry := range result.Schedule {
		builder.WriteString(fmt.Sprintf("%6d | %s | %s | %s\n",
			entry.Period, format.Currency(entry.Interest), format.Currency(entry.Principal),
			format.Currency(entry.RemainingBalance)))
	}
	return builder.String()
}
