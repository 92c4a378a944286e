/*
Package logger provides leveled, component-scoped logging.

Each subsystem logs through its own Component; components are individually
enabled so that cipher-derivation breadcrumbs can be turned on without
drowning in client noise. Output formats: text, json, color.

Configuration comes from code (Config), from LogConfig values, or from the
environment:

	SIGCIPHER_LOG_LEVEL       DEBUG|INFO|WARN|ERROR
	SIGCIPHER_LOG_FORMAT      text|json|color
	SIGCIPHER_LOG_OUTPUT      stdout|stderr|null
	SIGCIPHER_LOG_COMPONENTS  comma-separated component names to enable
	SIGCIPHER_LOG_TIMESTAMP   true|1 to prefix timestamps
*/
package logger
