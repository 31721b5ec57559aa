package app

import (
	"time"

	"devsetup/internal/adapters"
	"devsetup/internal/ports"
)

type Service struct {
	Runner      ports.RunnerPort
	Manager     ports.ManagerPort
	Prompter    ports.PrompterPort
	StackSource ports.StackSourcePort
	PackageFile ports.PackageFilePort
	Reports     ports.ReportWriterPort
	Clock       func() time.Time
}

func NewService() Service {
	runner := adapters.NewExecRunner()
	return Service{
		Runner:      runner,
		Manager:     adapters.NewManagerExecAdapter(runner),
		Prompter:    adapters.NewHuhPrompter(),
		StackSource: adapters.NewStackFileAdapter(),
		PackageFile: adapters.NewPackageFileAdapter(),
		Reports:     adapters.NewReportFileAdapter(),
		Clock:       time.Now,
	}
}
