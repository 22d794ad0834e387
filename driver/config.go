// Package driver implements the console session around the quadrature
// package: it reads a tabulated function, prints it and prints the result
// of every quadrature rule rounded to a fixed number of decimal places.
package driver

// Config parametrizes a Session.
type Config struct {
	// Middle also prints the middle rectangle rule.
	Middle bool
	// Places is the number of decimal places results are rounded to.
	Places int
	// Summary prints descriptive statistics of the function values.
	Summary bool
	// Digest prints the blake3 digest of the table.
	Digest bool
}

// DefaultConfig returns the configuration of the plain console session: no
// middle rectangle, results rounded to one decimal place.
func DefaultConfig() Config {
	return Config{
		Places: 1,
	}
}
