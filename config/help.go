package config

import (
	"flag"
	"fmt"
)

const HelpMessage = `
Ride booking analytics.

Usage:
  analytics -mode <dashboard|report|stage> [-config-path config.yaml]

Modes:
  dashboard   serve the query menu, filtered dashboard and insights over HTTP and WebSocket
  report      run every menu query and the default dashboard once, then publish or print them
  stage       copy the dataset into the PostgreSQL bookings table

Flags:
  -mode          application mode
  -config-path   path to the config yaml file (default config.yaml)
  -help          show this message

Environment (overrides config.yaml):
  DATASET_PATH, DATASET_SHEET, ANALYTICS_ENGINE (memory|sql), SERVER_PORT,
  DATABASE_HOST, DATABASE_PORT, DATABASE_USER, DATABASE_PASSWORD, DATABASE_DATABASE,
  RABBITMQ_HOST, RABBITMQ_PORT, RABBITMQ_USER, RABBITMQ_PASSWORD, RABBITMQ_EXCHANGE,
  REPORT_PUBLISH, REPORT_OUTPUT, LOG_LEVEL
`

func PrintHelp() {
	if HelpMessage != "" {
		fmt.Printf("%s", HelpMessage)
	} else {
		flag.Usage()
	}
}
