// Package data holds the hand-authored reference tables the classifier is
// loaded with at startup: domain exemplars, keyword rules, subdomain rules,
// statute sections and constitutional articles. Everything here is read-only
// after load.
package data

import "github.com/praj33/Law-Agent-by-Grok-sub003/internal/domain"

// Exemplars returns the fixed exemplar table: one entry per legal domain,
// in the canonical insertion order used for similarity tie-breaking.
func Exemplars() []domain.DomainExemplar {
	return []domain.DomainExemplar{
		{
			Domain: domain.DomainCriminalLaw,
			Phrases: []string{
				"someone committed a crime against me and I want to file a police complaint",
				"I was attacked and threatened with violence by a person in my neighbourhood",
				"my child was kidnapped and the kidnapper demanded ransom money",
				"a person cheated me and stole my money through fraud and forgery",
				"I was sexually assaulted and want the offender arrested and punished",
			},
		},
		{
			Domain: domain.DomainFamilyLaw,
			Phrases: []string{
				"I want to file for divorce from my spouse and settle alimony",
				"custody dispute over my children after separation from my husband",
				"my in-laws are harassing me for dowry after marriage",
				"I need maintenance from my husband who abandoned me and the children",
				"domestic violence at home by my spouse and his family members",
			},
		},
		{
			Domain: domain.DomainPropertyLaw,
			Phrases: []string{
				"dispute over ownership of ancestral land and partition among brothers",
				"someone illegally occupied my plot and refuses to vacate the property",
				"the builder delayed possession of my flat and violated the agreement",
				"boundary wall dispute with my neighbour over encroachment of land",
				"registration and mutation of inherited property in my name",
			},
		},
		{
			Domain: domain.DomainEmploymentLaw,
			Phrases: []string{
				"my employer terminated me without notice and refuses to pay my salary",
				"I was sexually harassed at my workplace by a senior colleague",
				"the company denied my gratuity and provident fund after resignation",
				"unsafe working conditions and forced overtime without extra wages",
				"discrimination at work because of my caste religion and gender",
			},
		},
		{
			Domain: domain.DomainConsumerLaw,
			Phrases: []string{
				"the shop sold me a defective product and refuses refund or replacement",
				"I was charged more than the printed price and given fake goods",
				"the service provider deficient service caused me financial loss",
				"misleading advertisement tricked me into buying a useless product",
				"my insurance claim was wrongly rejected by the insurance company",
			},
		},
		{
			Domain: domain.DomainCyberLaw,
			Phrases: []string{
				"my bank account was hacked and money stolen through online fraud",
				"someone is stalking and blackmailing me on social media",
				"my photos were morphed and posted online without my consent",
				"phishing email stole my credit card and net banking password",
				"identity theft someone created a fake profile in my name",
			},
		},
		{
			Domain: domain.DomainTenantRights,
			Phrases: []string{
				"my landlord refuses to return my security deposit after I vacated",
				"the landlord is forcibly evicting me without any notice",
				"rent was increased arbitrarily in violation of the rent agreement",
				"the landlord disconnected water and electricity to force me out",
				"landlord enters my rented house without permission and harasses me",
			},
		},
		{
			Domain: domain.DomainContractLaw,
			Phrases: []string{
				"the other party breached our written agreement and caused losses",
				"I paid an advance but the vendor never delivered as per contract",
				"partnership dispute over profit sharing terms in our deed",
				"the contractor abandoned work midway violating the construction contract",
				"I was made to sign an agreement under coercion and misrepresentation",
			},
		},
		{
			Domain: domain.DomainConstitutionalLaw,
			Phrases: []string{
				"my fundamental rights were violated by a government authority",
				"I was denied equality and discriminated against by the state",
				"police detained me illegally without following due process",
				"my freedom of speech and expression was unlawfully restricted",
				"writ petition against arbitrary action of a public official",
			},
		},
		{
			Domain: domain.DomainTaxLaw,
			Phrases: []string{
				"I received a wrong income tax demand notice from the department",
				"my tax refund has been pending and withheld without reason",
				"penalty imposed for late filing of returns despite timely payment",
				"dispute over goods and services tax assessment of my business",
				"tax deducted at source was not deposited by my employer",
			},
		},
	}
}

// KeywordRules returns the fixed keyword overlay table. Forced rules
// deterministically select their domain when any keyword appears; the rest
// contribute a bounded additive boost per matched keyword.
func KeywordRules() []domain.KeywordRule {
	return []domain.KeywordRule{
		// Explicit crime terms override any similarity ranking.
		{
			Domain:   domain.DomainCriminalLaw,
			Keywords: []string{"kidnap", "kidnapped", "kidnapping", "abduct", "abducted", "abduction", "ransom", "rape", "raped", "murder", "murdered", "homicide", "acid attack"},
			Forced:   true,
			Priority: 100,
		},
		{
			Domain:   domain.DomainCriminalLaw,
			Keywords: []string{"police", "fir", "arrest", "arrested", "theft", "stolen", "robbery", "robbed", "assault", "assaulted", "threat", "threatened", "fraud", "cheated", "forgery", "stabbed", "attacked"},
			Boost:    0.15,
			Priority: 50,
		},
		{
			Domain:   domain.DomainFamilyLaw,
			Keywords: []string{"divorce", "alimony", "custody", "maintenance", "dowry", "spouse", "husband", "wife", "marriage", "domestic violence", "in laws"},
			Boost:    0.15,
			Priority: 50,
		},
		{
			Domain:   domain.DomainPropertyLaw,
			Keywords: []string{"land", "plot", "ancestral", "partition", "encroachment", "possession", "builder", "registry", "mutation", "real estate"},
			Boost:    0.12,
			Priority: 40,
		},
		{
			Domain:   domain.DomainEmploymentLaw,
			Keywords: []string{"employer", "salary", "wages", "terminated", "fired", "workplace", "gratuity", "provident fund", "resignation", "overtime", "harassed at work"},
			Boost:    0.15,
			Priority: 50,
		},
		{
			Domain:   domain.DomainConsumerLaw,
			Keywords: []string{"refund", "defective", "replacement", "warranty", "overcharged", "consumer", "deficient service", "misleading advertisement", "insurance claim"},
			Boost:    0.12,
			Priority: 40,
		},
		{
			Domain:   domain.DomainCyberLaw,
			Keywords: []string{"hacked", "hacking", "online fraud", "phishing", "otp", "cyber", "social media", "morphed", "fake profile", "identity theft", "net banking"},
			Boost:    0.15,
			Priority: 50,
		},
		{
			Domain:   domain.DomainTenantRights,
			Keywords: []string{"landlord", "tenant", "rent", "eviction", "evicting", "security deposit", "rent agreement", "vacate"},
			Boost:    0.15,
			Priority: 50,
		},
		{
			Domain:   domain.DomainContractLaw,
			Keywords: []string{"contract", "agreement", "breach", "breached", "advance payment", "vendor", "partnership deed", "coercion", "misrepresentation"},
			Boost:    0.12,
			Priority: 40,
		},
		{
			Domain:   domain.DomainConstitutionalLaw,
			Keywords: []string{"fundamental rights", "writ", "habeas corpus", "discrimination by state", "illegal detention", "freedom of speech", "government authority"},
			Boost:    0.12,
			Priority: 40,
		},
		{
			Domain:   domain.DomainTaxLaw,
			Keywords: []string{"income tax", "tax notice", "tax refund", "gst", "tds", "assessment", "penalty for late filing"},
			Boost:    0.12,
			Priority: 40,
		},
	}
}

// SubdomainRules returns the per-domain subdomain vocabulary. Resolution is
// scoped to the chosen domain; a domain with no matching rule falls back to
// the "general" subdomain.
func SubdomainRules() []domain.SubdomainRule {
	return []domain.SubdomainRule{
		{Domain: domain.DomainCriminalLaw, Subdomain: "kidnapping", Keywords: []string{"kidnap", "kidnapped", "kidnapping", "abduct", "abducted", "abduction", "ransom"}, Forced: true, Priority: 100},
		{Domain: domain.DomainCriminalLaw, Subdomain: "sexual_offence", Keywords: []string{"rape", "raped", "molested", "sexual assault", "sexually assaulted", "sexually harassed"}, Forced: true, Priority: 90},
		{Domain: domain.DomainCriminalLaw, Subdomain: "homicide", Keywords: []string{"murder", "murdered", "killed", "homicide"}, Forced: true, Priority: 90},
		{Domain: domain.DomainCriminalLaw, Subdomain: "theft_robbery", Keywords: []string{"theft", "stolen", "robbery", "robbed", "burglary", "snatched"}, Priority: 50},
		{Domain: domain.DomainCriminalLaw, Subdomain: "assault", Keywords: []string{"assault", "assaulted", "attacked", "beaten", "stabbed", "threat", "threatened"}, Priority: 40},
		{Domain: domain.DomainCriminalLaw, Subdomain: "fraud", Keywords: []string{"fraud", "cheated", "cheating", "forgery", "duped"}, Priority: 40},

		{Domain: domain.DomainFamilyLaw, Subdomain: "divorce", Keywords: []string{"divorce", "separation", "alimony"}, Priority: 50},
		{Domain: domain.DomainFamilyLaw, Subdomain: "custody", Keywords: []string{"custody", "guardianship"}, Priority: 50},
		{Domain: domain.DomainFamilyLaw, Subdomain: "dowry", Keywords: []string{"dowry"}, Forced: true, Priority: 80},
		{Domain: domain.DomainFamilyLaw, Subdomain: "domestic_violence", Keywords: []string{"domestic violence", "beaten by husband", "cruelty"}, Priority: 60},
		{Domain: domain.DomainFamilyLaw, Subdomain: "maintenance", Keywords: []string{"maintenance", "abandoned"}, Priority: 40},

		{Domain: domain.DomainPropertyLaw, Subdomain: "ownership_dispute", Keywords: []string{"ownership", "ancestral", "partition", "inherited"}, Priority: 50},
		{Domain: domain.DomainPropertyLaw, Subdomain: "encroachment", Keywords: []string{"encroachment", "illegally occupied", "boundary"}, Priority: 50},
		{Domain: domain.DomainPropertyLaw, Subdomain: "builder_dispute", Keywords: []string{"builder", "possession", "flat"}, Priority: 40},

		{Domain: domain.DomainEmploymentLaw, Subdomain: "wrongful_termination", Keywords: []string{"terminated", "fired", "dismissal", "without notice"}, Priority: 50},
		{Domain: domain.DomainEmploymentLaw, Subdomain: "workplace_harassment", Keywords: []string{"sexually harassed", "harassment", "harassed"}, Forced: true, Priority: 80},
		{Domain: domain.DomainEmploymentLaw, Subdomain: "unpaid_dues", Keywords: []string{"salary", "wages", "gratuity", "provident fund", "unpaid"}, Priority: 40},

		{Domain: domain.DomainConsumerLaw, Subdomain: "defective_goods", Keywords: []string{"defective", "replacement", "warranty", "fake goods"}, Priority: 50},
		{Domain: domain.DomainConsumerLaw, Subdomain: "deficient_service", Keywords: []string{"deficient service", "service provider"}, Priority: 40},
		{Domain: domain.DomainConsumerLaw, Subdomain: "insurance", Keywords: []string{"insurance claim", "insurance"}, Priority: 40},

		{Domain: domain.DomainCyberLaw, Subdomain: "financial_fraud", Keywords: []string{"hacked", "online fraud", "phishing", "otp", "net banking", "credit card"}, Priority: 50},
		{Domain: domain.DomainCyberLaw, Subdomain: "online_harassment", Keywords: []string{"stalking", "blackmailing", "morphed", "fake profile", "social media"}, Priority: 50},

		{Domain: domain.DomainTenantRights, Subdomain: "deposit_dispute", Keywords: []string{"security deposit", "deposit"}, Priority: 50},
		{Domain: domain.DomainTenantRights, Subdomain: "illegal_eviction", Keywords: []string{"eviction", "evicting", "forcibly", "disconnected"}, Priority: 50},
		{Domain: domain.DomainTenantRights, Subdomain: "rent_dispute", Keywords: []string{"rent", "rent agreement", "increased"}, Priority: 40},

		{Domain: domain.DomainContractLaw, Subdomain: "breach", Keywords: []string{"breach", "breached", "violated", "never delivered"}, Priority: 50},
		{Domain: domain.DomainContractLaw, Subdomain: "partnership", Keywords: []string{"partnership", "profit sharing", "deed"}, Priority: 40},

		{Domain: domain.DomainConstitutionalLaw, Subdomain: "fundamental_rights", Keywords: []string{"fundamental rights", "equality", "freedom of speech"}, Priority: 50},
		{Domain: domain.DomainConstitutionalLaw, Subdomain: "illegal_detention", Keywords: []string{"detained", "illegal detention", "habeas corpus"}, Priority: 50},

		{Domain: domain.DomainTaxLaw, Subdomain: "income_tax", Keywords: []string{"income tax", "tax notice", "tax refund", "tds"}, Priority: 50},
		{Domain: domain.DomainTaxLaw, Subdomain: "gst", Keywords: []string{"gst", "goods and services tax"}, Priority: 50},
	}
}
