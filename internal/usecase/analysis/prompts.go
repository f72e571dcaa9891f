package analysis

import (
	"fmt"
	"strings"

	"github.com/callcoachhq/call-coach/internal/domain/entities"
)

// Per-operation sampling temperatures. Scoring runs coldest so repeat
// runs stay close; summaries tolerate more variety.
const (
	summarizeTemperature  = 0.7
	scoreTemperature      = 0.3
	objectionsTemperature = 0.5
)

const summarizeSystemPrompt = "You are an expert conversation analyst, sales coach, and call classifier. You must ALWAYS provide a concise, useful summary and structured insights for the transcript, even if it is not a sales call. Additionally, you must classify whether it is a sales call and infer a high-level category and tags."

func summarizeUserPrompt(transcript string) string {
	return fmt.Sprintf(`Review the following transcript and return a JSON object with:
{
  "isSalesCall": <true if this is clearly a sales call between a sales rep and a prospect, false otherwise>,
  "category": "<one of: sales_call, customer_support, internal_meeting, training, other>",
  "tags": ["<short keyword tags like: discovery, demo, renewal, pricing, support, onboarding, q&a, etc.>"],
  "summary": "<3-5 sentence concise summary of the conversation>",
  "keyMoments": ["<3-5 bullet points with important moments, optionally with rough timestamps if present>"],
  "nextSteps": ["<0-5 next-step action items mentioned in the conversation>"],
  "coachingNotes": "<2-4 actionable coaching tips. If not a sales call, you can instead give neutral suggestions like 'No sales-specific coaching; this appears to be an internal or non-sales conversation.'>"
}

IMPORTANT:
- Even if this is NOT a sales call (e.g. internal meeting, tech support, interview, spam, or vague content), you MUST still provide a meaningful summary, key moments, and next steps if any are implied by the conversation.
- Only set "isSalesCall" to true if you are confident this is a sales conversation between a rep and a prospect.
- Choose the closest matching category and a few short, relevant tags to describe the conversation.

Transcript:
%s
`, transcript)
}

const scoreSystemPrompt = "You are an expert sales call evaluator and call classifier. First, determine if the transcript is for a real sales call (between a sales rep and a prospect). Only produce scores if you are confident it is a sales call. If not, return as specified below."

func scoreUserPrompt(transcript string) string {
	return fmt.Sprintf(`Review the transcript below and return a JSON object with the following structure:

{
  "isSalesCall": <true if clearly a sales call, false otherwise>,
  "overall": <number 0-100, meaningful only if isSalesCall is true>,
  "categories": {
    "discovery": <number 0-10>,
    "objections": <number 0-10>,
    "clarity": <number 0-10>,
    "nextSteps": <number 0-10>
  },
  "rationale": "<detailed explanation of the score if a sales call, or a message clarifying why this isn't a sales call>"
}

IMPORTANT:
- If this is NOT a sales call (e.g. it's an internal meeting, tech support, interview, spam, or content is too vague), set "isSalesCall" to false, and set all numerical fields to 0 and rationale to a short sentence explaining why.
- If it IS a sales call, proceed to score it as follows:

EVALUATION CRITERIA IF SALES CALL:
- Discovery (0-10): Did the rep ask meaningful questions about customer needs, pain points, current situation, budget, timeline, decision-makers? Score low if superficial. Score 0-2 if no discovery.
- Objection handling (0-10): Did the rep handle or anticipate objections? Score low if none present or handled. Score 0-2 if no objections.
- Clarity (0-10): Was communication clear, structured, and professional? Score low for vague/poor structure.
- Next steps (0-10): Were concrete, specific next steps identified? Score low for vague commitments/no clear action items.

Overall (0-100) is a weighted average.

Transcript:
%s
`, transcript)
}

const objectionsSystemPrompt = "You are a call classifier and sales analyst. First, decide if the transcript is that of a sales call. If it is, detect and extract sales objections. If not, respond as specified below."

func objectionsUserPrompt(transcript string) string {
	types := make([]string, len(entities.ObjectionTypes))
	for i, t := range entities.ObjectionTypes {
		types[i] = string(t)
	}
	typeList := strings.Join(types, ", ")

	return fmt.Sprintf(`Review the transcript below and return a JSON object with:
{
  "isSalesCall": <true if clearly a sales call, false otherwise>,
  "objections": [
    {
      "type": "<string, one of: %s>",
      "snippet": "<string, 50-150 characters excerpt>",
      "confidence": <number 0-1>
    }
  ]
}

IMPORTANT:
- If this is NOT a sales call (e.g. internal meeting, tech support, interview, or insufficient context), set "isSalesCall" to false and set "objections" to an empty array.
- If it IS a sales call, detect objections. For each, include:
    - "type": objection type (%s)
    - "snippet": relevant excerpt (50-150 characters)
    - "confidence": likelihood 0.0-1.0

Transcript:
%s
`, typeList, typeList, transcript)
}
