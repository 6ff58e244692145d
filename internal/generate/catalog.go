package generate

import "github.com/abbababa/careers/internal/model"

// Template is one entry of the posting catalog. Index templates have no
// responsibilities and describe the category as a whole.
type Template struct {
	ID               string
	Category         string
	BaseSlug         string
	Title            string
	Summary          string
	Description      string
	Responsibilities []string
	Skills           []string
	ExperienceLevel  string
}

// IsIndex reports whether the template is a category landing posting.
func (t Template) IsIndex() bool {
	return len(t.Responsibilities) == 0
}

var compensation = model.Compensation{
	Currency: "USDC",
	Type:     "annually",
	Range:    "$80,000–$180,000",
	Equity:   "equity",
}

var defaultPlatforms = []string{"langchain", "elizaos", "autogen", "virtuals", "crewai"}

const applicationProcess = `## How to Apply

This is an agent-native hiring process. We evaluate builders by what they ship, not resumes.

1. Build an agent on Abba Baba (any category — show us what you can create)
2. Send a message to Agent ID cmlwggmn001un01l4a1mjkep0 with subject: Developer Application
3. Include: your agent ID, what it does, and why you want to build on Abba Baba
4. Our recruiting agent evaluates and replies within minutes

No cover letter. No phone screen. Just build something.`

var howToApplySteps = []model.IntegrationStep{
	{
		Step:        1,
		Title:       "Build an agent on Abba Baba",
		Description: "Create an agent on the Abba Baba marketplace in any category. This is how we see what you can ship — no resume required.",
	},
	{
		Step:        2,
		Title:       "Message the recruiting agent",
		Description: "Send a message to Agent ID cmlwggmn001un01l4a1mjkep0 with subject line: Developer Application.",
	},
	{
		Step:        3,
		Title:       "Include your application details",
		Description: "In your message: your agent ID, what your agent does, and why you want to build on Abba Baba.",
	},
	{
		Step:        4,
		Title:       "Get a response within minutes",
		Description: "Our recruiting agent evaluates your application autonomously and replies within minutes with next steps.",
	},
}

func index(category, title, summary, description, level string) Template {
	return Template{
		ID:              category + "-index",
		Category:        category,
		BaseSlug:        "index",
		Title:           title,
		Summary:         summary,
		Description:     description,
		ExperienceLevel: level,
	}
}

// Catalog is the fixed set of postings every batch is generated from.
var Catalog = []Template{
	// engineering
	index("engineering", "Engineering Roles at Abba Baba",
		"All open engineering positions at Abba Baba — agent developer, SDK integrations, smart contract, infrastructure, security and data platform.",
		"Abba Baba is hiring engineers who build the infrastructure of A2A commerce. From agent-native application developers to smart contract engineers and platform infrastructure leads, these roles define the technical foundation of the emerging agent economy. We work async-first, remote-first, and compensate in USDC + equity.",
		"Mid-level to Staff"),
	{
		ID: "agent-developer", Category: "engineering", BaseSlug: "agent-developer",
		Title:       "Agent Developer",
		Summary:     "Build production agents that transact on the Abba Baba marketplace — any category, any framework.",
		Description: "You'll design, build, and ship autonomous agents that operate on the Abba Baba A2A marketplace: discovering services, negotiating terms, settling payments via escrow, and delivering results. You'll work with LangChain, ElizaOS, AutoGen, and the Abba Baba SDK. Your agents need to be reliable, well-scoped, and capable of operating 24/7 without human intervention.",
		Responsibilities: []string{
			"Design and implement agent logic for specific marketplace roles (research, QA, settlement, content)",
			"Integrate agents with the Abba Baba A2A SDK and escrow settlement layer",
			"Write evaluation harnesses that verify agent behavior against acceptance criteria",
			"Monitor agent performance, error rates, and escrow dispute rates in production",
			"Document agent behavior, pricing rationale, and edge case handling",
		},
		Skills:          []string{"Python or TypeScript", "LangChain / ElizaOS / AutoGen", "Abba Baba SDK", "REST APIs", "LLM prompting"},
		ExperienceLevel: "Mid-level",
	},
	{
		ID: "sdk-integrations", Category: "engineering", BaseSlug: "sdk-integrations",
		Title:       "SDK & Integrations Engineer",
		Summary:     "Extend the Abba Baba SDK and build integrations with major agent frameworks.",
		Description: "You'll own the developer experience for agents building on Abba Baba: extending the SDK, writing integrations with LangChain, ElizaOS, Virtuals, CrewAI, and other frameworks, and making sure developers can get from zero to earning USDC in under 30 minutes.",
		Responsibilities: []string{
			"Maintain and extend the @abbababa/sdk with new settlement, discovery, and registry features",
			"Build and maintain framework integrations (LangChain, ElizaOS, AutoGen, Virtuals, CrewAI)",
			"Write SDK documentation, quickstart guides, and code examples",
			"Triage developer-reported SDK bugs with root cause analysis",
		},
		Skills:          []string{"TypeScript", "Python", "SDK design", "REST APIs", "developer experience"},
		ExperienceLevel: "Mid-level",
	},
	{
		ID: "smart-contract", Category: "engineering", BaseSlug: "smart-contract",
		Title:       "Smart Contract Engineer",
		Summary:     "Design, audit, and deploy escrow contracts and settlement logic on Base.",
		Description: "You'll own the on-chain layer of Abba Baba: designing and auditing the AbbababaEscrowV2 contract, building the settlement logic that processes thousands of A2A transactions, and upholding the cryptographic guarantees that make trustless agent commerce possible.",
		Responsibilities: []string{
			"Design and implement smart contract upgrades for the AbbababaEscrowV2 settlement system",
			"Conduct internal security reviews before every contract deployment",
			"Write unit, integration, and fuzzing suites for all contract logic",
			"Coordinate external audits and document remediations",
			"Monitor dispute rates, gas costs, and revert patterns on-chain",
		},
		Skills:          []string{"Solidity", "Foundry / Hardhat", "EVM internals", "Base / Ethereum", "security auditing"},
		ExperienceLevel: "Senior",
	},
	{
		ID: "infrastructure", Category: "engineering", BaseSlug: "infrastructure",
		Title:       "Infrastructure Engineer",
		Summary:     "Own the platform infrastructure that keeps A2A commerce running 24/7.",
		Description: "You'll build and maintain the systems that power Abba Baba: API reliability, agent hosting, observability, deployment pipelines, and the database architecture behind high-frequency A2A transaction data. Agents don't sleep, and neither does the infrastructure that serves them.",
		Responsibilities: []string{
			"Design and maintain cloud infrastructure for the API and agent registry",
			"Own schema design, query optimization, and scaling for PostgreSQL",
			"Build logging, metrics, and alerting for agent transactions",
			"Ship zero-downtime deployment pipelines",
			"Run incident response with documented runbooks and post-mortems",
		},
		Skills:          []string{"Vercel / Railway / AWS", "PostgreSQL", "Docker / Kubernetes", "observability", "infrastructure-as-code"},
		ExperienceLevel: "Senior",
	},
	{
		ID: "security-engineer", Category: "engineering", BaseSlug: "security-engineer",
		Title:       "Security Engineer",
		Summary:     "Harden agent identity, API keys, and escrow flows against adversarial agents.",
		Description: "Agent marketplaces attract adversarial agents. You'll threat-model every surface an agent can touch, from API key issuance to escrow release, and build the detection and response tooling that keeps buyers and sellers safe.",
		Responsibilities: []string{
			"Threat-model agent registration, messaging, and settlement flows",
			"Build abuse detection for sybil agents and wash trading",
			"Run the vulnerability disclosure program and triage reports",
			"Review code changes that touch authentication and key management",
		},
		Skills:          []string{"application security", "threat modeling", "TypeScript", "cryptography basics", "incident response"},
		ExperienceLevel: "Senior",
	},
	{
		ID: "data-platform", Category: "engineering", BaseSlug: "data-platform",
		Title:       "Data Platform Engineer",
		Summary:     "Build the pipelines that turn on-chain settlement and agent telemetry into queryable data.",
		Description: "Every A2A transaction leaves a trail across our API, escrow contracts, and agent logs. You'll build the ingestion and modeling layer that joins them, so product, safety, and economy teams can answer questions in minutes instead of days.",
		Responsibilities: []string{
			"Build ingestion from Base event logs and platform databases",
			"Model settlement, dispute, and reputation data for analytics",
			"Own data quality checks and freshness SLAs",
			"Expose curated datasets to internal agents through stable APIs",
		},
		Skills:          []string{"SQL", "Python or Go", "event pipelines", "data modeling", "EVM event logs"},
		ExperienceLevel: "Mid-level to Senior",
	},

	// operations
	index("operations", "Operations Roles at Abba Baba",
		"All open operations positions at Abba Baba — agent ops, monitoring, incident response, fleet management, support engineering and release management.",
		"Abba Baba is hiring operations specialists who keep agent fleets and platform systems running reliably. From agent deployment managers to monitoring engineers and incident responders, these roles make sure the agent economy doesn't stop.",
		"Mid-level to Senior"),
	{
		ID: "agent-ops", Category: "operations", BaseSlug: "agent-ops",
		Title:       "Agent Operations Manager",
		Summary:     "Deploy, configure, and keep marketplace agents healthy across their lifecycle.",
		Description: "You'll run the day-to-day operation of first-party agents on Abba Baba: rolling out new versions, tuning pricing and capacity, and coordinating with developers when an agent misbehaves in production.",
		Responsibilities: []string{
			"Own deployment calendars and rollbacks for first-party agents",
			"Tune agent pricing and capacity against marketplace demand",
			"Coordinate with developers on production regressions",
			"Maintain the operational runbook for every agent in the fleet",
		},
		Skills:          []string{"operations management", "agent frameworks", "metrics literacy", "clear writing"},
		ExperienceLevel: "Mid-level",
	},
	{
		ID: "monitoring", Category: "operations", BaseSlug: "monitoring",
		Title:       "Monitoring Engineer",
		Summary:     "Instrument agents and settlement flows so problems surface before buyers notice.",
		Description: "You'll define what healthy looks like for an autonomous marketplace and build the dashboards, alerts, and synthetic checks that prove it every minute of the day.",
		Responsibilities: []string{
			"Define service level objectives for discovery, messaging, and settlement",
			"Build synthetic buyer agents that exercise critical paths continuously",
			"Tune alert thresholds to cut noise without missing incidents",
			"Publish weekly reliability reports",
		},
		Skills:          []string{"Grafana / Datadog", "alert design", "SLOs", "scripting"},
		ExperienceLevel: "Mid-level",
	},
	{
		ID: "incident-response", Category: "operations", BaseSlug: "incident-response",
		Title:       "Incident Response Lead",
		Summary:     "Lead the response when agents, contracts, or APIs fail at 3am.",
		Description: "You'll own our incident process end to end: on-call design, live coordination, customer communication, and the post-mortems that make the next incident smaller.",
		Responsibilities: []string{
			"Run the on-call rotation and escalation policy",
			"Coordinate live incidents across engineering and support",
			"Write blameless post-mortems with tracked follow-ups",
			"Run game days that rehearse escrow and API outages",
		},
		Skills:          []string{"incident command", "communication", "distributed systems basics", "post-mortem facilitation"},
		ExperienceLevel: "Senior",
	},
	{
		ID: "fleet-management", Category: "operations", BaseSlug: "fleet-management",
		Title:       "Fleet Management Specialist",
		Summary:     "Manage hundreds of agent instances across frameworks, regions, and versions.",
		Description: "As agent counts grow, so does configuration drift. You'll keep an accurate inventory of every running agent, its version, its credentials, and its owner, and automate the boring parts of keeping them current.",
		Responsibilities: []string{
			"Maintain the inventory of running agents and their owners",
			"Automate credential rotation and version upgrades",
			"Detect and retire abandoned or misconfigured agents",
			"Report fleet health trends to engineering leadership",
		},
		Skills:          []string{"automation", "configuration management", "inventory tooling", "attention to detail"},
		ExperienceLevel: "Mid-level",
	},
	{
		ID: "support-engineer", Category: "operations", BaseSlug: "support-engineer",
		Title:       "Support Engineer",
		Summary:     "Help developers and their agents get unstuck, fast.",
		Description: "You'll be the first technical responder for developers building on Abba Baba, reproducing issues with the SDK and API, fixing what you can, and routing the rest with a reproduction attached.",
		Responsibilities: []string{
			"Answer developer tickets with working reproductions",
			"Maintain troubleshooting guides for common SDK errors",
			"Escalate platform bugs with complete context",
			"Feed recurring pain points into the product roadmap",
		},
		Skills:          []string{"TypeScript or Python", "API debugging", "technical writing", "empathy"},
		ExperienceLevel: "Junior to Mid-level",
	},
	{
		ID: "release-manager", Category: "operations", BaseSlug: "release-manager",
		Title:       "Release Manager",
		Summary:     "Ship SDK, API, and contract releases on a predictable cadence.",
		Description: "You'll coordinate releases across the SDK, the public API, and on-chain contracts, making sure changelogs, migration guides, and rollbacks are ready before anything reaches developers.",
		Responsibilities: []string{
			"Own the release calendar for SDK and API versions",
			"Gate releases on test, audit, and documentation readiness",
			"Publish changelogs and migration guides",
			"Coordinate rollback plans for every release",
		},
		Skills:          []string{"release engineering", "semantic versioning", "CI/CD", "coordination"},
		ExperienceLevel: "Mid-level",
	},

	// product
	index("product", "Product Roles at Abba Baba",
		"All open product positions at Abba Baba — agent product management, UX for AI, technical writing, growth, developer relations and analytics.",
		"Abba Baba is hiring product people who understand that the primary users of a marketplace can be agents. These roles shape what agents and their developers experience, from the first SDK call to the hundredth settled transaction.",
		"Mid-level to Senior"),
	{
		ID: "agent-product-manager", Category: "product", BaseSlug: "agent-product-manager",
		Title:       "Agent Product Manager",
		Summary:     "Define the product for a marketplace whose customers are autonomous agents.",
		Description: "You'll decide what the marketplace should do next when half of your users are software. You'll talk to developers, read agent logs, and turn what you learn into specs that engineering can ship in weeks.",
		Responsibilities: []string{
			"Own the roadmap for discovery, negotiation, and settlement features",
			"Interview developers and analyze agent behavior data",
			"Write specs with measurable success criteria",
			"Run launches with engineering, support, and growth",
		},
		Skills:          []string{"product management", "API products", "data analysis", "agent frameworks"},
		ExperienceLevel: "Senior",
	},
	{
		ID: "ux-ai", Category: "product", BaseSlug: "ux-ai",
		Title:       "UX Designer for AI Systems",
		Summary:     "Design the human surfaces of an agent-first marketplace.",
		Description: "Humans still fund, supervise, and debug agents. You'll design the dashboards, consent flows, and dispute views that let a person understand in seconds what their agents did and why.",
		Responsibilities: []string{
			"Design dashboards for agent spend, earnings, and disputes",
			"Prototype supervision and approval flows",
			"Run usability sessions with developers and operators",
			"Maintain the design system",
		},
		Skills:          []string{"interaction design", "prototyping", "design systems", "research"},
		ExperienceLevel: "Mid-level",
	},
	{
		ID: "technical-writer", Category: "product", BaseSlug: "technical-writer",
		Title:       "Technical Writer",
		Summary:     "Write the docs that both developers and their agents read.",
		Description: "Our documentation is consumed by humans and by agents through llms.txt and OpenAPI. You'll write guides, references, and examples that are precise enough for a model and clear enough for a person.",
		Responsibilities: []string{
			"Write quickstarts, guides, and API references",
			"Keep llms.txt and OpenAPI descriptions accurate",
			"Test every code sample against the live SDK",
			"Run documentation reviews with engineering",
		},
		Skills:          []string{"technical writing", "markdown", "API documentation", "TypeScript basics"},
		ExperienceLevel: "Mid-level",
	},
	{
		ID: "growth", Category: "product", BaseSlug: "growth",
		Title:       "Growth Lead",
		Summary:     "Grow the number of agents that list, buy, and settle on Abba Baba.",
		Description: "You'll own the funnel from first visit to first settled transaction, run experiments across content, integrations, and incentives, and build the reporting that tells us what actually worked.",
		Responsibilities: []string{
			"Own activation and retention metrics for developers and agents",
			"Run experiments on onboarding and incentives",
			"Partner with framework communities on distribution",
			"Report growth results weekly",
		},
		Skills:          []string{"growth experimentation", "analytics", "developer marketing", "SQL"},
		ExperienceLevel: "Senior",
	},
	{
		ID: "developer-relations", Category: "product", BaseSlug: "developer-relations",
		Title:       "Developer Relations Engineer",
		Summary:     "Be the voice of Abba Baba in agent developer communities.",
		Description: "You'll build demos, give talks, run workshops, and bring honest feedback from framework communities back into the product.",
		Responsibilities: []string{
			"Build reference agents and example repositories",
			"Run workshops and hackathon support",
			"Answer questions in community channels",
			"Collect and route developer feedback",
		},
		Skills:          []string{"public speaking", "TypeScript or Python", "community building", "demos"},
		ExperienceLevel: "Mid-level",
	},
	{
		ID: "product-analyst", Category: "product", BaseSlug: "product-analyst",
		Title:       "Product Analyst",
		Summary:     "Turn marketplace data into decisions.",
		Description: "You'll define the metrics that describe marketplace health, build the dashboards that track them, and answer the questions product and leadership bring to you.",
		Responsibilities: []string{
			"Define core marketplace health metrics",
			"Build and maintain product dashboards",
			"Size opportunities for roadmap planning",
			"Analyze experiment results",
		},
		Skills:          []string{"SQL", "statistics", "dashboarding", "communication"},
		ExperienceLevel: "Mid-level",
	},

	// intelligence
	index("intelligence", "Intelligence Roles at Abba Baba",
		"All open intelligence positions at Abba Baba — prompt engineering, evaluation, fine-tuning, red teaming, retrieval and agent research.",
		"Abba Baba is hiring people who make models do the right thing reliably. These roles own how our agents reason, how we measure them, and how we break them before someone else does.",
		"Mid-level to Staff"),
	{
		ID: "prompt-engineer", Category: "intelligence", BaseSlug: "prompt-engineer",
		Title:       "Prompt Engineer",
		Summary:     "Design the instructions that first-party agents run on.",
		Description: "You'll write, version, and test the prompts behind our recruiting, support, and settlement agents, treating each one like production code with reviews and regression suites.",
		Responsibilities: []string{
			"Write and version prompts for first-party agents",
			"Build regression suites for prompt changes",
			"Measure cost and latency across model providers",
			"Document prompt patterns for external developers",
		},
		Skills:          []string{"LLM prompting", "evaluation", "Python or TypeScript", "writing"},
		ExperienceLevel: "Mid-level",
	},
	{
		ID: "evaluator", Category: "intelligence", BaseSlug: "evaluator",
		Title:       "Model Evaluation Engineer",
		Summary:     "Measure whether agents actually do what they claim.",
		Description: "You'll build the evaluation harnesses that score agents on accuracy, safety, and cost, and publish the benchmarks buyers use to choose between sellers.",
		Responsibilities: []string{
			"Build automated evaluation harnesses",
			"Design benchmarks for common marketplace tasks",
			"Publish evaluation results to agent listings",
			"Audit evaluation data for leakage and bias",
		},
		Skills:          []string{"ML evaluation", "Python", "statistics", "dataset design"},
		ExperienceLevel: "Senior",
	},
	{
		ID: "fine-tuning", Category: "intelligence", BaseSlug: "fine-tuning",
		Title:       "Fine-Tuning Engineer",
		Summary:     "Adapt open models to marketplace tasks where they beat frontier APIs on cost.",
		Description: "You'll identify tasks where a tuned small model outperforms a general one, curate the data, run the training, and ship the result behind the same interface our agents already use.",
		Responsibilities: []string{
			"Curate training data from marketplace transcripts",
			"Run fine-tuning experiments and ablations",
			"Serve tuned models with predictable latency",
			"Compare tuned models against API baselines",
		},
		Skills:          []string{"PyTorch", "LoRA / QLoRA", "data curation", "model serving"},
		ExperienceLevel: "Senior",
	},
	{
		ID: "red-teaming", Category: "intelligence", BaseSlug: "red-teaming",
		Title:       "Red Team Engineer",
		Summary:     "Break our agents before adversarial agents do.",
		Description: "You'll attack first-party and partner agents with prompt injection, tool abuse, and economic exploits, then work with owners to close every hole you find.",
		Responsibilities: []string{
			"Run adversarial campaigns against marketplace agents",
			"Build reusable attack libraries",
			"Report findings with reproductions and severity",
			"Verify fixes before disclosure closes",
		},
		Skills:          []string{"prompt injection", "security research", "Python", "creativity"},
		ExperienceLevel: "Mid-level to Senior",
	},
	{
		ID: "retrieval-engineer", Category: "intelligence", BaseSlug: "retrieval-engineer",
		Title:       "Retrieval Engineer",
		Summary:     "Help agents find the right service on the marketplace.",
		Description: "Discovery is retrieval. You'll build the indexing, ranking, and query understanding that match a buyer agent's intent to the sellers most likely to deliver.",
		Responsibilities: []string{
			"Build embedding and keyword indexes over agent listings",
			"Train and evaluate ranking models",
			"Measure discovery quality with offline and online metrics",
			"Tune retrieval latency under load",
		},
		Skills:          []string{"information retrieval", "embeddings", "ranking", "Python or Go"},
		ExperienceLevel: "Senior",
	},
	{
		ID: "agent-researcher", Category: "intelligence", BaseSlug: "agent-researcher",
		Title:       "Agent Research Scientist",
		Summary:     "Study how autonomous agents negotiate, cooperate, and fail.",
		Description: "You'll run experiments on multi-agent negotiation and cooperation using real marketplace data and publish findings that shape both our product and the wider field.",
		Responsibilities: []string{
			"Design multi-agent experiments on marketplace tasks",
			"Analyze negotiation and settlement behavior",
			"Publish research internally and externally",
			"Turn findings into product recommendations",
		},
		Skills:          []string{"research methods", "multi-agent systems", "Python", "writing"},
		ExperienceLevel: "Staff",
	},

	// safety
	index("safety", "Safety Roles at Abba Baba",
		"All open safety positions at Abba Baba — AI safety, legal compliance, policy, audit, trust and safety, and privacy.",
		"Abba Baba is hiring people who make autonomous commerce safe to participate in. These roles set the rules, check they are followed, and respond when they are not.",
		"Mid-level to Senior"),
	{
		ID: "ai-safety", Category: "safety", BaseSlug: "ai-safety",
		Title:       "AI Safety Researcher",
		Summary:     "Keep autonomous agents within the bounds their owners set.",
		Description: "You'll research and implement controls that keep agents within spending limits, scope, and policy, and build the monitoring that catches them when they drift.",
		Responsibilities: []string{
			"Design guardrails for agent spending and scope",
			"Build behavioral monitors for policy violations",
			"Evaluate safety controls under adversarial pressure",
			"Publish safety guidance for developers",
		},
		Skills:          []string{"AI safety", "evaluation", "Python", "policy design"},
		ExperienceLevel: "Senior",
	},
	{
		ID: "legal-compliance", Category: "safety", BaseSlug: "legal-compliance",
		Title:       "Legal & Compliance Counsel",
		Summary:     "Navigate payments, sanctions, and consumer law for agent commerce.",
		Description: "You'll work out how existing payments, sanctions, and consumer protection law applies when the buyer and seller are both software, and turn that into policy our product can enforce.",
		Responsibilities: []string{
			"Advise on payments and stablecoin regulation",
			"Maintain sanctions screening policy",
			"Draft marketplace terms for agents and developers",
			"Review launches for compliance risk",
		},
		Skills:          []string{"fintech law", "compliance programs", "stablecoin regulation", "drafting"},
		ExperienceLevel: "Senior",
	},
	{
		ID: "policy", Category: "safety", BaseSlug: "policy",
		Title:       "Marketplace Policy Lead",
		Summary:     "Write the rules agents must follow to trade on Abba Baba.",
		Description: "You'll define what agents may list, how they may negotiate, and what happens when they break the rules, and you'll make those rules machine-readable.",
		Responsibilities: []string{
			"Write and maintain marketplace policy",
			"Publish machine-readable policy for agent consumption",
			"Define enforcement ladders and appeals",
			"Review edge cases with trust and safety",
		},
		Skills:          []string{"policy writing", "trust and safety", "structured data", "judgment"},
		ExperienceLevel: "Senior",
	},
	{
		ID: "audit", Category: "safety", BaseSlug: "audit",
		Title:       "Agent Auditor",
		Summary:     "Audit agents and transactions for policy and contract compliance.",
		Description: "You'll sample transactions, trace agent decisions, and verify that what happened on-chain matches what the agent claimed off-chain.",
		Responsibilities: []string{
			"Sample and audit settled transactions",
			"Trace agent decisions through logs and events",
			"Report compliance findings with evidence",
			"Improve audit tooling and sampling methods",
		},
		Skills:          []string{"auditing", "SQL", "on-chain analysis", "attention to detail"},
		ExperienceLevel: "Mid-level",
	},
	{
		ID: "trust-and-safety", Category: "safety", BaseSlug: "trust-and-safety",
		Title:       "Trust & Safety Analyst",
		Summary:     "Find and stop abuse on the marketplace.",
		Description: "You'll investigate fraud, spam, and abusive agents, take enforcement action, and feed patterns back into automated detection.",
		Responsibilities: []string{
			"Investigate abuse reports and suspicious agents",
			"Take and document enforcement actions",
			"Identify abuse patterns for automated detection",
			"Handle appeals fairly and quickly",
		},
		Skills:          []string{"investigations", "SQL", "fraud patterns", "clear writing"},
		ExperienceLevel: "Mid-level",
	},
	{
		ID: "privacy-engineer", Category: "safety", BaseSlug: "privacy-engineer",
		Title:       "Privacy Engineer",
		Summary:     "Protect the data agents exchange on behalf of their owners.",
		Description: "Agents carry their owners' data into every negotiation. You'll design data minimization, retention, and access controls that keep that data where it belongs.",
		Responsibilities: []string{
			"Design data minimization for agent messaging",
			"Implement retention and deletion pipelines",
			"Review features for privacy impact",
			"Respond to data subject requests",
		},
		Skills:          []string{"privacy engineering", "data governance", "TypeScript or Go", "GDPR"},
		ExperienceLevel: "Senior",
	},

	// economy
	index("economy", "Economy Roles at Abba Baba",
		"All open economy positions at Abba Baba — treasury, market making, dispute analysis, partnerships, pricing and tokenomics.",
		"Abba Baba is hiring people who design and run the economics of an agent marketplace: how value is priced, held, moved, and disputed when software trades with software.",
		"Mid-level to Senior"),
	{
		ID: "treasury", Category: "economy", BaseSlug: "treasury",
		Title:       "Treasury Manager",
		Summary:     "Manage USDC treasury, escrow float, and settlement liquidity.",
		Description: "You'll manage the stablecoin treasury that backs escrow and payouts, balancing liquidity, yield, and risk while keeping settlement instant for every agent.",
		Responsibilities: []string{
			"Manage USDC balances across wallets and chains",
			"Forecast settlement liquidity needs",
			"Set treasury risk limits and monitor exposure",
			"Report treasury positions monthly",
		},
		Skills:          []string{"treasury management", "stablecoins", "risk management", "spreadsheets"},
		ExperienceLevel: "Senior",
	},
	{
		ID: "market-maker", Category: "economy", BaseSlug: "market-maker",
		Title:       "Marketplace Liquidity Lead",
		Summary:     "Make sure every buyer agent finds a seller, and every seller finds demand.",
		Description: "You'll seed supply in thin categories, run first-party agents where the market is empty, and retire them once independent sellers arrive.",
		Responsibilities: []string{
			"Identify thin categories from search and order data",
			"Seed supply with first-party and partner agents",
			"Track fill rates and time to first transaction",
			"Retire subsidized supply as markets mature",
		},
		Skills:          []string{"marketplace dynamics", "SQL", "agent frameworks", "negotiation"},
		ExperienceLevel: "Mid-level to Senior",
	},
	{
		ID: "dispute-analyst", Category: "economy", BaseSlug: "dispute-analyst",
		Title:       "Dispute Resolution Analyst",
		Summary:     "Resolve escrow disputes between agents fairly and quickly.",
		Description: "When a buyer agent rejects delivery, the dispute lands with you. You'll review evidence, decide outcomes, and improve the automated resolution rules that handle the easy cases.",
		Responsibilities: []string{
			"Review escrow disputes and decide outcomes",
			"Document precedents for consistent decisions",
			"Tune automated dispute resolution rules",
			"Report dispute trends by category",
		},
		Skills:          []string{"arbitration", "evidence review", "SQL", "judgment"},
		ExperienceLevel: "Mid-level",
	},
	{
		ID: "partnerships", Category: "economy", BaseSlug: "partnerships",
		Title:       "Partnerships Manager",
		Summary:     "Bring frameworks, wallets, and protocols onto Abba Baba.",
		Description: "You'll source, negotiate, and launch partnerships with agent frameworks, wallets, and protocols that bring supply and demand to the marketplace.",
		Responsibilities: []string{
			"Source and qualify partnership opportunities",
			"Negotiate partnership terms",
			"Coordinate integration launches",
			"Track partner-sourced volume",
		},
		Skills:          []string{"business development", "negotiation", "crypto ecosystem", "project management"},
		ExperienceLevel: "Senior",
	},
	{
		ID: "pricing-strategist", Category: "economy", BaseSlug: "pricing-strategist",
		Title:       "Pricing Strategist",
		Summary:     "Design fee structures that scale from micro-payments to enterprise contracts.",
		Description: "You'll design marketplace fees and pricing guidance for sellers, test them against real transaction data, and keep them simple enough for an agent to reason about.",
		Responsibilities: []string{
			"Model fee structures against transaction data",
			"Publish pricing guidance for seller agents",
			"Run pricing experiments with clear guardrails",
			"Monitor take rate and seller retention",
		},
		Skills:          []string{"pricing", "economics", "SQL", "experimentation"},
		ExperienceLevel: "Senior",
	},
	{
		ID: "tokenomics", Category: "economy", BaseSlug: "tokenomics",
		Title:       "Incentive Design Economist",
		Summary:     "Design incentive programs that reward useful agents, not gaming.",
		Description: "You'll design and evaluate incentive programs for agents and developers, modeling how rational and adversarial agents will respond before a single token moves.",
		Responsibilities: []string{
			"Model incentive programs under adversarial behavior",
			"Simulate agent responses to program changes",
			"Measure program impact after launch",
			"Sunset programs that stop paying off",
		},
		Skills:          []string{"mechanism design", "simulation", "Python", "economics"},
		ExperienceLevel: "Senior",
	},

	// defi
	index("defi", "DeFAI & Economic Roles at Abba Baba",
		"All open DeFAI positions at Abba Baba — trading, on-chain intelligence, yield management, risk assessment, MEV research and protocol integrations.",
		"Autonomous agents executing DeFi strategies, on-chain intelligence, yield optimization, and protocol risk management on Base Sepolia and beyond. The machine economy runs 24/7, and these roles build the agents that trade, analyze, and manage risk in it.",
		"Mid-level to Senior"),
	{
		ID: "trading", Category: "defi", BaseSlug: "trading",
		Title:       "Trading Agent Engineer",
		Summary:     "Build agents that execute cross-DEX arbitrage with escrow-settled USDC compensation.",
		Description: "You'll build and operate trading agents that find and execute arbitrage across decentralized exchanges, with strict risk limits and full audit trails.",
		Responsibilities: []string{
			"Build arbitrage and execution strategies",
			"Enforce position and loss limits in code",
			"Backtest strategies on historical chain data",
			"Monitor live strategy performance",
		},
		Skills:          []string{"DEX mechanics", "Python or Rust", "backtesting", "risk management"},
		ExperienceLevel: "Senior",
	},
	{
		ID: "onchain-intelligence", Category: "defi", BaseSlug: "onchain-intelligence",
		Title:       "On-Chain Intelligence Analyst",
		Summary:     "Surface actionable on-chain insights for agents and protocols.",
		Description: "You'll monitor blockchain state, track wallet behavior, and package what you find into signals other agents can buy on the marketplace.",
		Responsibilities: []string{
			"Track wallet and protocol behavior on Base",
			"Build signals from on-chain events",
			"Package signals as marketplace services",
			"Validate signal accuracy over time",
		},
		Skills:          []string{"on-chain analysis", "SQL", "Dune / indexers", "data visualization"},
		ExperienceLevel: "Mid-level",
	},
	{
		ID: "yield-management", Category: "defi", BaseSlug: "yield-management",
		Title:       "Yield Strategy Engineer",
		Summary:     "Optimize yield across DeFi protocols with minimal human intervention.",
		Description: "You'll build agents that compound, rebalance, and harvest rewards across protocols while respecting the risk budgets their owners set.",
		Responsibilities: []string{
			"Build auto-compounding and rebalancing agents",
			"Evaluate protocol yields net of gas and risk",
			"Implement owner-defined risk budgets",
			"Report strategy performance to owners",
		},
		Skills:          []string{"DeFi protocols", "Solidity reading", "TypeScript", "portfolio math"},
		ExperienceLevel: "Mid-level to Senior",
	},
	{
		ID: "risk-assessment", Category: "defi", BaseSlug: "risk-assessment",
		Title:       "Protocol Risk Analyst",
		Summary:     "Provide real-time risk signals on protocols and portfolios.",
		Description: "You'll evaluate protocol risk, smart contract vulnerabilities, and portfolio exposure, and turn your assessments into signals agents can act on automatically.",
		Responsibilities: []string{
			"Assess protocol and contract risk",
			"Maintain risk scores for integrated protocols",
			"Alert on exposure changes in real time",
			"Publish risk methodology",
		},
		Skills:          []string{"smart contract risk", "quantitative analysis", "on-chain data", "writing"},
		ExperienceLevel: "Senior",
	},
	{
		ID: "mev-research", Category: "defi", BaseSlug: "mev-research",
		Title:       "MEV Researcher",
		Summary:     "Study and defend against extractable value in agent settlement.",
		Description: "Agent transactions are predictable, and predictable transactions get front-run. You'll research how MEV affects agent settlement and design protections for our users.",
		Responsibilities: []string{
			"Measure MEV exposure of agent transactions",
			"Design private order flow and protection strategies",
			"Collaborate with builders and relays",
			"Publish research on agent-specific MEV",
		},
		Skills:          []string{"MEV", "EVM internals", "research", "Python or Rust"},
		ExperienceLevel: "Senior",
	},
	{
		ID: "protocol-integrations", Category: "defi", BaseSlug: "protocol-integrations",
		Title:       "Protocol Integrations Engineer",
		Summary:     "Connect marketplace agents to the DeFi protocols they need.",
		Description: "You'll build and maintain the adapters that let agents swap, lend, and borrow through major protocols using the same SDK they use to trade services.",
		Responsibilities: []string{
			"Build protocol adapters for the SDK",
			"Test integrations on Base Sepolia before mainnet",
			"Track protocol upgrades and breaking changes",
			"Document integration guides",
		},
		Skills:          []string{"TypeScript", "ethers / viem", "DeFi protocols", "testing"},
		ExperienceLevel: "Mid-level",
	},

	// general
	{
		ID: "research", Category: "general", BaseSlug: "research",
		Title:       "Research Generalist",
		Summary:     "Investigate the questions nobody else owns yet.",
		Description: "You'll pick up open questions about the agent economy, from market sizing to framework adoption, and come back with answers the team can act on.",
		Responsibilities: []string{
			"Scope and run research projects end to end",
			"Synthesize findings into short decision memos",
			"Maintain a library of market and ecosystem research",
			"Present findings to the team",
		},
		Skills:          []string{"research", "writing", "data analysis", "curiosity"},
		ExperienceLevel: "Any",
	},
	{
		ID: "data", Category: "general", BaseSlug: "data",
		Title:       "Data Analyst",
		Summary:     "Answer questions with data across every team.",
		Description: "You'll work across product, economy, and safety to answer questions with data, build the dashboards people actually use, and keep metrics definitions consistent.",
		Responsibilities: []string{
			"Answer ad-hoc questions with clear analysis",
			"Build and maintain shared dashboards",
			"Keep metric definitions consistent",
			"Teach teammates to self-serve",
		},
		Skills:          []string{"SQL", "dashboarding", "statistics", "communication"},
		ExperienceLevel: "Mid-level",
	},
	{
		ID: "marketing", Category: "general", BaseSlug: "marketing",
		Title:       "Marketing Lead",
		Summary:     "Tell the story of agent-native commerce.",
		Description: "You'll own positioning, content, and launches for a product whose audience includes developers, operators, and the agents they build.",
		Responsibilities: []string{
			"Own positioning and messaging",
			"Run launch campaigns",
			"Produce content for developers and operators",
			"Measure campaign impact",
		},
		Skills:          []string{"product marketing", "content", "developer audiences", "analytics"},
		ExperienceLevel: "Senior",
	},
	{
		ID: "community", Category: "general", BaseSlug: "community",
		Title:       "Community Manager",
		Summary:     "Build the community of people building agents on Abba Baba.",
		Description: "You'll run our community spaces, highlight great builders, and make sure every question gets a good answer.",
		Responsibilities: []string{
			"Run community channels and events",
			"Highlight community projects",
			"Route questions to the right experts",
			"Track community health",
		},
		Skills:          []string{"community management", "communication", "event planning", "empathy"},
		ExperienceLevel: "Mid-level",
	},
	{
		ID: "support", Category: "general", BaseSlug: "support",
		Title:       "Customer Support Specialist",
		Summary:     "Help operators and buyers with accounts, payments, and disputes.",
		Description: "You'll handle non-technical support for the people who fund and supervise agents: account access, payment questions, and dispute status.",
		Responsibilities: []string{
			"Answer support tickets quickly and accurately",
			"Maintain help center articles",
			"Escalate payment and dispute issues",
			"Report recurring issues",
		},
		Skills:          []string{"customer support", "writing", "patience", "payments basics"},
		ExperienceLevel: "Junior",
	},
	{
		ID: "people-ops", Category: "general", BaseSlug: "people-ops",
		Title:       "People Operations Lead",
		Summary:     "Build a remote-first team that hires through agents.",
		Description: "You'll run people operations for a distributed team, from agent-native hiring to onboarding, payroll in USDC, and the policies that keep everyone productive and supported.",
		Responsibilities: []string{
			"Run onboarding and offboarding",
			"Administer USDC payroll and benefits",
			"Maintain people policies",
			"Improve the agent-native hiring process",
		},
		Skills:          []string{"people operations", "remote teams", "payroll", "policy"},
		ExperienceLevel: "Senior",
	},
	{
		ID: "other", Category: "general", BaseSlug: "other",
		Title:       "Open Application",
		Summary:     "Build for the agent economy at Abba Baba — if you don't fit a listed role, apply here.",
		Description: "Don't see your exact role listed? We're building the infrastructure of agent-native commerce and we're open to unconventional backgrounds and skill sets. If you want to build at the frontier, apply via the agent-native process and tell us what you bring.",
		Responsibilities: []string{
			"Define your scope clearly and how it adds value to Abba Baba",
			"Demonstrate capability through a working agent on the marketplace",
			"Own a domain that may not have a defined job spec yet",
			"Work with high autonomy and low process overhead",
		},
		Skills:          []string{"deep domain expertise", "agent/AI familiarity", "autonomy", "execution"},
		ExperienceLevel: "Any",
	},
}
