// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the terminal catalog browser for the lifetime of the process and
// cancels it on termination signals.
package client
