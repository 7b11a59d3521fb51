package assignments

import "errors"

var (
	ErrProjectNotFound    = errors.New("Project not found")
	ErrCompanyNotFound    = errors.New("Company not found")
	ErrAssignmentNotFound = errors.New("Assignment not found")
	ErrAlreadyAssigned    = errors.New("Company is already assigned to this project")
)
