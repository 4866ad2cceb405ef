// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package query shapes catalog reads before they reach a store.
//
// It turns optional search criteria into a [Predicate] that can be evaluated
// either in memory ([Predicate.Matches]) or rendered to SQL through squirrel
// ([Predicate.ToSql]), and translates 1-based caller pages into 0-based store
// pages and back ([ToStoreRequest], [ToPageResult]).
package query
