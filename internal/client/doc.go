// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive admin client runtime.
//
// It wires the server adapter, the list editors, the notification queue and
// the health watcher into a single process lifecycle around the terminal UI.
package client
