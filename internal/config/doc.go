// Package config defines the iobench run configuration and the throughput
// cap it carries.
//
// A run is described by:
//   - Duration: how long one run lasts
//   - Frequency: how often the run repeats
//   - Operations: the ordered list of Read/Write operations to perform
//   - Speed: the throughput cap applied to every operation
//
// Basic Usage:
//
//	cfg, err := config.LoadConfig("run.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg) // Config {Duration: 600sec, Frequency: 1800sec, Operations: Read:Write, Speed: 64MBps}
//
// Speeds:
//
// ParseSpeed accepts "pass_through", a bare byte count, or a byte count with
// a "Bps" suffix and an optional binary scale letter:
//
//	config.ParseSpeed("1024")         // Bps(1024)
//	config.ParseSpeed("1024KBps")     // Bps(1048576)
//	config.ParseSpeed("pass_through") // PassThrough
//
// Speed.String is meant for people and does not round-trip: Bps(1500)
// prints as "1.46484375KBps", which ParseSpeed rejects.
//
// Config files:
//
// YAML and JSON files are accepted. Fields that are left out keep their
// Default values; unknown fields are rejected.
//
//	duration: 10m
//	frequency: 1800
//	operations: [Read, Write]
//	speed: pass_through
package config
