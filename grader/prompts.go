/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package grader

import "github.com/agentgrade/agentgrade/promptbuilder"

// scoringScale is the shared 1-5 scale every rubric prompt embeds.
const scoringScale = `SCORING SCALE:
- Score 5 (Excellent): The response fully satisfies the rubric with no meaningful gaps.
  * Reasoning: Focus on how the response meets the rubric completely.
  * Tone: Positive, confirming excellence.
- Score 4 (Good): The response satisfies the rubric with only minor variations or omissions.
  * Reasoning: Acknowledge strengths, note the minor gaps that prevent a 5.
- Score 3 (Adequate): The response partially satisfies the rubric with notable gaps.
  * Reasoning: Balance strengths and weaknesses, explain what prevents a higher score.
- Score 2 (Poor): The response has significant problems but contains some correct elements.
  * Reasoning: Clearly identify the major issues while acknowledging correct aspects.
- Score 1 (Failing): The response fails the rubric or contains major errors.
  * Reasoning: Explain the fundamental failures.`

// outputFormat is the shared reply contract.
const outputFormat = `<output_format>
Return your judgment as a JSON object with this structure:
{
  "score": 1-5,
  "reason": "explanation of the score"
}
</output_format>

Respond with only the JSON object, no additional text.`

// toolCallAccuracyPrompt scores whether the agent called the right tools
// with the right arguments for the query.
var toolCallAccuracyPrompt = promptbuilder.MustNew(`<task>
You are evaluating the tool calls an AI agent made while answering a user query.
Judge whether the agent invoked appropriate tools, with correct arguments, and
used their results faithfully in its response.
</task>

<query>
{{query}}
</query>

<response>
{{response}}
</response>

<tool_calls>
{{tool_calls}}
</tool_calls>

<instructions>
1. Check that each tool call was warranted by the query.
2. Check that the arguments match what the query asked about.
3. Check that the response reflects the tool results rather than contradicting or ignoring them.
4. Provide a score from 1 to 5 using this scoring scale:

` + scoringScale + `
</instructions>

` + outputFormat)

// intentResolutionPrompt scores whether the response resolves the user's
// actual intent.
var intentResolutionPrompt = promptbuilder.MustNew(`<task>
You are evaluating whether an AI agent's response resolves the intent behind
the user's query, not merely its literal wording.
</task>

<query>
{{query}}
</query>

<response>
{{response}}
</response>

<instructions>
1. Identify what the user was actually trying to accomplish.
2. Judge whether the response resolves that intent.
3. Provide a score from 1 to 5 using this scoring scale:

` + scoringScale + `
</instructions>

` + outputFormat)

// taskAdherencePrompt scores whether the agent stayed on task.
var taskAdherencePrompt = promptbuilder.MustNew(`<task>
You are evaluating whether an AI agent's response stays on the task the user
set, without drifting into unrequested territory or skipping required steps.
</task>

<query>
{{query}}
</query>

<response>
{{response}}
</response>

<instructions>
1. Determine the task the query defines.
2. Judge how closely the response adheres to that task.
3. Provide a score from 1 to 5 using this scoring scale:

` + scoringScale + `
</instructions>

` + outputFormat)

// responseCompletenessPrompt scores whether the response covers everything
// the query required.
var responseCompletenessPrompt = promptbuilder.MustNew(`<task>
You are evaluating whether an AI agent's response is complete: every part of
the user's query is addressed with enough detail to be useful.
</task>

<query>
{{query}}
</query>

<response>
{{response}}
</response>

<instructions>
1. List the parts of the query that require an answer.
2. Judge whether the response addresses each part with sufficient detail.
3. Provide a score from 1 to 5 using this scoring scale:

` + scoringScale + `
</instructions>

` + outputFormat)

// rubricPrompts maps each rubric to its prompt template.
var rubricPrompts = map[Rubric]*promptbuilder.Prompt{
	ToolCallAccuracy:     toolCallAccuracyPrompt,
	IntentResolution:     intentResolutionPrompt,
	TaskAdherence:        taskAdherencePrompt,
	ResponseCompleteness: responseCompletenessPrompt,
}
