package prompt

// Output schema declarations appended to each prompt. Kept as literal JSON
// shapes because the model follows concrete examples far more reliably than
// prose descriptions.

const discoverSchemaHint = `OUTPUT FORMAT:
Respond with valid JSON matching this exact schema:
{
  "ideas": [
    {
      "id": "idea-1",
      "name": "string (1-100 chars)",
      "description": "string (10-500 chars)",
      "features": ["string (3-5 items)"],
      "estimatedCost": { "min": number, "max": number },
      "estimatedTimeline": "string (e.g. \"8-10 weeks\")",
      "matchedSolution": { "slug": "string", "name": "string", "startingPrice": number, "deploymentTimeline": "string", "featureMatchPercentage": number } | null
    }
  ]
}
The "ideas" array must contain 5 or 6 entries.`

const analyzeSchemaHint = `OUTPUT FORMAT:
Respond with valid JSON matching this exact schema:
{
  "ideaName": "string (3-100 chars)",
  "overallScore": number (0-100),
  "summary": "string (50-500 chars)",
  "categories": {
    "market": { "score": number (0-100), "analysis": "string (50-2000 chars)", "findings": ["string (3-5 items)"] },
    "technical": {
      "score": number (0-100), "analysis": "string", "findings": ["string (3-5 items)"],
      "complexity": "low" | "medium" | "high",
      "suggestedTechStack": ["string (3-10 items)"],
      "challenges": ["string (2-5 items)"]
    },
    "monetization": {
      "score": number (0-100), "analysis": "string", "findings": ["string (3-5 items)"],
      "revenueModels": [ { "name": "string", "description": "string", "pros": ["string (2-5 items)"], "cons": ["string (1-5 items)"] } ]
    },
    "competition": {
      "score": number (0-100), "analysis": "string", "findings": ["string (3-5 items)"],
      "competitors": [ { "name": "string", "description": "string", "type": "direct" | "indirect" | "potential" } ],
      "intensity": "low" | "moderate" | "high" | "very-high"
    }
  },
  "recommendations": ["string (3-5 items, 20-300 chars each)"]
}
"revenueModels" must contain 2-3 entries and "competitors" 3-5 entries.`

const estimateSchemaHint = `OUTPUT FORMAT:
Respond with valid JSON matching this exact schema:
{
  "projectName": "string (1-100 chars)",
  "alternativeNames": ["string (2-4 items)"],
  "projectSummary": "string (10-500 chars)",
  "estimatedTimeline": {
    "weeks": number,
    "phases": [ { "phase": 1, "name": "string", "description": "string", "duration": "X weeks" } ]
  },
  "approach": "custom" | "ready-made" | "hybrid",
  "matchedSolution": { "slug": "string", "name": "string", "startingPrice": number, "deploymentTimeline": "string", "featureMatchPercentage": number } | null,
  "techStack": ["string (2-8 items)"],
  "keyInsights": ["string (3-5 items)"],
  "strategicInsights": [ { "type": "strength" | "challenge" | "recommendation", "title": "string", "description": "string" } ]
}
"phases" must contain 5-7 entries with no cost fields.`

const roiSchemaHint = `OUTPUT FORMAT:
Respond with valid JSON matching this exact schema:
{
  "annualROI": number,
  "paybackPeriodMonths": number (1-60),
  "roiPercentage": number,
  "breakdown": {
    "laborSavings": number, "errorReduction": number, "revenueIncrease": number, "timeRecovered": number
  },
  "yearlyProjection": [ { "month": 1, "cumulativeSavings": number, "cumulativeCost": number, "netROI": number } ],
  "costVsReturn": {
    "appCost": { "min": number, "max": number },
    "year1Return": number, "year3Return": number
  },
  "aiInsight": "string (50-1000 chars)"
}
"yearlyProjection" must contain exactly 12 entries, months 1 through 12.`
