package numberutils

import "strconv"

// IsBool checks if the given string can be converted to a valid boolean.
// It returns true for the values accepted by strconv.ParseBool, false otherwise.
func IsBool(str string) bool {
	_, err := strconv.ParseBool(str)
	return err == nil
}

// ToBoolWithDefault converts the given string to a boolean.
// If the string cannot be converted, it returns the provided default value.
func ToBoolWithDefault(s string, defaultVal bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return defaultVal
}

// ToBoolWithError converts the given string to a boolean and returns any error that occurred during conversion.
// It returns the boolean value if successful, or an error if the string cannot be converted.
func ToBoolWithError(str string) (bool, error) {
	return strconv.ParseBool(str)
}
