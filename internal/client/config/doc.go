// Package config loads runtime configuration for the diarykeeper client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-k string   identity API key; empty runs with the development login
//	-t int      request timeout (seconds)
//	-f string   session file
//	-i int      online check interval (seconds)
//	-l string   log level
//
// # File schema
//
//	server_endpoint_addr: 127.0.0.1:50051
//	identity_api_key: ""
//	mock_login_delay: 100ms
//	request_timeout: 30s
//	session_file: /home/me/.config/diarykeeper/session.json
//	online_check_interval: 3s
//	log_level: warn
package config
