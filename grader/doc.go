/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package grader scores a captured agent execution against four fixed
// rubrics: tool-call accuracy, intent resolution, task adherence, and
// response completeness.
//
// Each rubric is a single-turn prompt sent to a grading model. The reply is
// expected to contain a JSON object with a 1-5 score and a reason; the score
// is compared against a per-rubric threshold to decide pass/fail. Tool-call
// accuracy only runs when the execution captured at least one tool call.
//
// Failures never abort grading: a transport error or an unparseable reply
// becomes a zero score with pass=false, tagged with a Status so callers can
// tell a retryable transport failure from a permanently malformed reply.
package grader
