package types

const (
	ActionDatasetLoaded  = "dataset_loaded"
	ActionDatasetStaged  = "dataset_staged"
	ActionQueryExecuted  = "query_executed"
	ActionDashboardBuilt = "dashboard_built"
	ActionReportDone     = "report_done"

	ActionRabbitMQConnected       = "rabbitmq_connected"
	ActionRabbitConnectionClosed  = "rabbitmq_connection_closed"
	ActionRabbitConnectionClosing = "rabbitmq_connection_closing"

	ActionDatabaseTransactionFailed = "database_transaction_failed"
)
