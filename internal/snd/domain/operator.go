package domain

// Operator is the staffing cost attached to one bus.
type Operator struct {
	AnnualSalary int `json:"annual_salary"`
}

// NewOperator validates the salary before constructing the operator.
func NewOperator(annualSalary int) (Operator, error) {
	if annualSalary < 0 {
		return Operator{}, ErrNegativeSalary
	}
	return Operator{AnnualSalary: annualSalary}, nil
}
