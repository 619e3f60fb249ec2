package marketmodels

import "fmt"

var MalformedOptionSymbolErr = fmt.Errorf("option symbol does not match the fixed-width NSE format")
var InvalidOpenInterestRowErr = fmt.Errorf("open interest row is malformed")
