package prompt

// Templates are fmt format strings; a literal percent sign is written as %%.

const campaignTemplate = `Create a comprehensive marketing campaign with these details:

PRODUCT/SERVICE: %s
TARGET AUDIENCE: %s
PLATFORMS: %s
TONE: %s
GOAL: %s

Please provide a structured response with these sections:

## 🎯 CAMPAIGN OBJECTIVES
- List 3-5 specific, measurable objectives

## 📱 PLATFORM-SPECIFIC STRATEGY
- Detailed strategy for each selected platform
- Content types and formats
- Posting frequency and timing

## ✨ CONTENT IDEAS (5-7 ideas)
- Specific content concepts with descriptions
- Visual suggestions
- Engagement tactics

## 📝 AD COPY VARIATIONS (3 variations)
- Variation 1: Problem-Agitate-Solve format
- Variation 2: Social proof format
- Variation 3: Urgency/Scarcity format

## 🔗 CALL-TO-ACTION SUGGESTIONS
- Primary CTA for each platform
- Secondary CTAs for different funnel stages

## 📊 TRACKING & MEASUREMENT
- Key metrics to track
- Success indicators
- Optimization suggestions

Make it practical, actionable, and data-driven. Use markdown formatting for better readability.`

const pitchTemplate = `Create a compelling, personalized sales pitch based on the following details:

PROMPT INPUTS:
- PRODUCT/SERVICE: %s
- KEY FEATURES: %s
- CUSTOMER: %s
- INDUSTRY: %s
- COMPANY SIZE: %s
- CHALLENGES: %s
- GOALS: %s
- COMPETITORS: %s
- PITCH TYPE: %s
- DESIRED TONE: %s
- ADDITIONAL NOTES: %s

Please provide a highly structured and persuasive response with these sections:

## 🏷️ PRODUCT OVERVIEW
- A comprehensive description of the product/service
- How it specifically addresses the industry landscape
- The core value it provides

## 🎯 30-SECOND ELEVATOR PITCH
- Concise, engaging opening
- Immediate value proposition focused on the customer's challenges

## 💡 VALUE PROPOSITION
- Clear business benefits (quantify when possible)
- ROI justification
- Problem-solution fit for %s

## ⚡ KEY DIFFERENTIATORS & FEATURES
- What makes this unique vs %s
- Highlight these key features: %s

## 🎯 TARGETED SOLUTIONS
- Specific solutions to: %s
- Detailed implementation recommendations
- Key success metrics

## 📞 CALL-TO-ACTION (CTA)
- Specific next steps for a %s
- Timeline suggestions and offer details

## 📧 COMMUNICATION TEMPLATES
- Optimized %s template
- LinkedIn outreach variation
- 2-step follow-up sequence

Make the content deeply personalized and highly persuasive. Use professional markdown formatting with icons.`

const leadScoreTemplate = `Analyze and score this lead with professional sales qualification:

LEAD DETAILS:
- Name: %s
- Company: %s
- Role: %s
- Budget: %s
- Business Need: %s
- Urgency: %s
- Timeline: %s
- Decision Makers: %s
- Challenges: %s

Score this lead across these dimensions (provide scores 0-100):

1. BUDGET (30 points):
   - Availability of funds
   - Spending authority
   - Budget alignment

2. NEED (30 points):
   - Problem clarity
   - Solution fit
   - Pain intensity

3. AUTHORITY (20 points):
   - Decision-making power
   - Buying process influence
   - Stakeholder access

4. TIMELINE (20 points):
   - Implementation urgency
   - Decision timeline
   - Project priority

Provide this structured response:

## 📊 LEAD SCORECARD
- Total Score: X/100
- Qualification: Hot/Warm/Cold
- Probability of Conversion: X%%

## 🔍 SCORING BREAKDOWN
### Budget: X/30
[Detailed analysis]

### Need: X/30
[Detailed analysis]

### Authority: X/20
[Detailed analysis]

### Timeline: X/20
[Detailed analysis]

## 🎯 RECOMMENDATIONS
- Immediate next steps
- Follow-up strategy
- Resources to provide
- Potential objections to address

## 📈 CONVERSION PROBABILITY
- Estimated likelihood: X%%
- Factors increasing probability
- Risk factors to mitigate

Use markdown formatting and provide actionable insights.`
