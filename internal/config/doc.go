// Package config loads hoist.json (or hoist.yaml) from the project root.
//
// # Configuration File Structure
//
//	{
//	  "name": "album",
//	  "secret": "change-me",
//	  "lang": "en",
//	  "server": {
//	    "host": "0.0.0.0",
//	    "port": 8080,
//	    "readTimeout": "10s",
//	    "shutdownTimeout": "15s"
//	  },
//	  "static": {"dir": "public", "prefix": "/static/"},
//	  "render": {"compact": false, "escape": false},
//	  "metrics": {"enabled": true, "path": "/metrics"},
//	  "tracing": {"enabled": true},
//	  "logging": {"level": "info", "format": "json"}
//	}
//
// HOIST_SECRET and HOIST_PORT override the secret and server port.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config
