// SPDX-License-Identifier: MIT

// Package commands implements the numlab subcommands. Each command is built
// by a CreateXCommand constructor around a runner that owns its flags.
// Results go to the command's stdout; logs and errors go to stderr.
package commands
