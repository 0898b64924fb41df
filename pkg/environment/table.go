package environment

// Variable is one `$key` substitution.
type Variable struct {
	Key   string
	Value string
}

// Table is the substitution table of one environment, in definition file order.
type Table []Variable
