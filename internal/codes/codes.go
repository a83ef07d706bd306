package codes

import "fmt"

// ExitCodes maps R CMD INSTALL exit statuses to their descriptions
var ExitCodes = map[int]string{
	0:   "Success",
	1:   "Package installation failed",
	2:   "Invalid arguments",
	126: "R found but not executable",
	127: "R executable not found",
}

// IsSuccess returns true if the exit code indicates a successful install
func IsSuccess(code int) bool {
	return code == 0
}

// GetErrorMessage returns the error message for a given exit code, or a generic message if unknown
func GetErrorMessage(code int) string {
	if msg, ok := ExitCodes[code]; ok {
		return msg
	}

	if code > 128 {
		return fmt.Sprintf("Terminated by signal %d", code-128)
	}

	return "Unknown error"
}
