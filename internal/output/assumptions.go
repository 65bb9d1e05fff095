package output

import "github.com/stephenkarpeles/money-for-life/internal/domain"

// DefaultAssumptions lists key modeling assumptions rendered when a comparison
// carries none of its own.
var DefaultAssumptions = []string{
	"Annual return: 9.0% compounded yearly, contributions added before growth",
	"Projection runs to age 80",
	"Federal tax: 2025 single-filer brackets, standard deduction $14600",
	"Dependent credit: $2000 per dependent, limited to federal tax owed",
	"Social Security: 6.2% up to $168600; Medicare 1.45% plus 0.9% above $200000",
	"State tax: simplified flat rate on federal taxable income",
}

func assumptionsFor(results *domain.PlanComparison) []string {
	if len(results.Assumptions) == 0 {
		return DefaultAssumptions
	}
	return results.Assumptions
}
