// Package cli provides the teamboard command-line client.
//
// A command given on the command line runs once:
//
//	teamboard-client -a 127.0.0.1:50051 show 3f2c...
//
// Without one, an interactive REPL starts and accepts the same commands
// until "exit" or EOF. The session token is saved under the session
// directory, so a login survives between runs.
package cli
