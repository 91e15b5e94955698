package handlers

import (
	"github.com/BlackSenju/techhive-automation/internal/activity"
	"github.com/BlackSenju/techhive-automation/internal/automation"
	"github.com/BlackSenju/techhive-automation/internal/shopify"
	"github.com/BlackSenju/techhive-automation/internal/worker"
)

var (
	catalog     shopify.Catalog
	activityLog *activity.Log
	autoSvc     *automation.Service
	pool        *worker.Pool
)

func SetCatalog(c shopify.Catalog) {
	catalog = c
}

func SetActivityLog(l *activity.Log) {
	activityLog = l
}

func SetAutomationService(s *automation.Service) {
	autoSvc = s
}

func SetWorkerPool(p *worker.Pool) {
	pool = p
}
