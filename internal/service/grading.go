package service

// CalculateGrade maps marks (0-100) to a letter grade and pass/fail
// status. Pass threshold is 40.
func CalculateGrade(marks float64) (grade string, status string) {
	switch {
	case marks >= 85:
		grade = "A+"
	case marks >= 75:
		grade = "A"
	case marks >= 70:
		grade = "B+"
	case marks >= 65:
		grade = "B"
	case marks >= 60:
		grade = "C+"
	case marks >= 55:
		grade = "C"
	case marks >= 40:
		grade = "D"
	default:
		grade = "F"
	}

	status = "Fail"
	if marks >= 40 {
		status = "Pass"
	}

	return grade, status
}
