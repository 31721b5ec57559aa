package types

import "time"

// InstallResult pairs one package with its outcome. Detail carries
// the error text for failures and the synthetic note for dry runs.
type InstallResult struct {
	Spec   PackageSpec   `json:"package"`
	Status InstallStatus `json:"status"`
	Detail string        `json:"detail,omitempty"`
}

// InstallReport aggregates the outcomes of one run. It is built
// incrementally during the sequential pass and not mutated afterwards.
type InstallReport struct {
	Manager    ManagerKind     `json:"manager"`
	DryRun     bool            `json:"dry_run,omitempty"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
	Results    []InstallResult `json:"results"`
}

func (r InstallReport) Succeeded() int {
	return r.count(InstallStatusSucceeded) + r.count(InstallStatusDryRun)
}

func (r InstallReport) FailedCount() int {
	return r.count(InstallStatusFailed)
}

// Failed reports whether any package in the run failed.
func (r InstallReport) Failed() bool {
	return r.FailedCount() > 0
}

func (r InstallReport) count(status InstallStatus) int {
	total := 0
	for _, result := range r.Results {
		if result.Status == status {
			total++
		}
	}
	return total
}
