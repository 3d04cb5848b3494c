package payrollrun

import "context"

// RunService governs the payroll run lifecycle:
// Draft -> To Approve -> Approved | Rejected, with at most one non-approved
// run per company at any time.
type RunService interface {
	CreateRun(ctx context.Context, req CreateRunRequest) (RunResponse, error)
	ProcessRun(ctx context.Context, id string) (RunResponse, error)
	SubmitForApproval(ctx context.Context, id string) (RunResponse, error)
	// ApproveRun may return a *ReconciliationError alongside a populated
	// response: the approval itself succeeded but some deduction balance
	// updates need retrying.
	ApproveRun(ctx context.Context, id string) (RunResponse, error)
	RejectRun(ctx context.Context, id string, req RejectRunRequest) (RunResponse, error)
	ResetToDraft(ctx context.Context, id string) (RunResponse, error)
	GetRun(ctx context.Context, id string) (RunResponse, error)
	ListRunSummaries(ctx context.Context) ([]RunSummaryResponse, error)
	DeleteRun(ctx context.Context, id string) error
}
