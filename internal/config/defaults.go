package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "dispatch",
	Pass: "dispatch",
	Name: "dispatch_db",
}

var defaultDispatch = Dispatch{
	OperationTimeout:  3 * time.Second,
	ReconcileInterval: 30 * time.Second,
}

var defaultKafka = Kafka{
	Topic:   "delivery-submissions",
	GroupID: "service-dispatch",
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       5,
	Burst:      10,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultPprof = Pprof{
	Addr: "127.0.0.1:6060",
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultDispatch returns the default dispatch engine settings.
func DefaultDispatch() Dispatch {
	return defaultDispatch
}

// DefaultKafka returns the default job-intake consumer settings.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultRateLimit returns the default rate limiter settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultPprof returns the default debug listener settings.
func DefaultPprof() Pprof {
	return defaultPprof
}
