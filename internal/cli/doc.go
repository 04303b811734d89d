// SPDX-License-Identifier: MIT

// Package cli implements the numbra command: configuration from NUMBRA_*
// environment variables overridden by flags, the generate/verify run, and
// process exit codes.
//
// Exit codes:
//
//	0  success
//	1  some records failed to complete or did not verify
//	2  usage error
//	3  runtime error (I/O, invalid configuration)
package cli
