package data

import "github.com/praj33/Law-Agent-by-Grok-sub003/internal/domain"

// Sections returns the statute section tables. This is a curated subset of
// the Indian Penal Code and the Code of Criminal Procedure, keyed by
// (code, section id). Loaded once at startup, never regenerated at runtime.
func Sections() []domain.StatuteSection {
	return []domain.StatuteSection{
		// Indian Penal Code — offences against the human body
		{Code: domain.CodePenal, ID: domain.SectionID{Number: 299}, Title: "Culpable homicide", Description: "Causing death by an act done with the intention of causing death.", Category: "offences_against_body", Domain: domain.DomainCriminalLaw, Subdomains: []string{"homicide"}},
		{Code: domain.CodePenal, ID: domain.SectionID{Number: 302}, Title: "Punishment for murder", Description: "Whoever commits murder shall be punished with death or imprisonment for life.", Category: "offences_against_body", Domain: domain.DomainCriminalLaw, Subdomains: []string{"homicide"}},
		{Code: domain.CodePenal, ID: domain.SectionID{Number: 304, Suffix: "B"}, Title: "Dowry death", Description: "Death of a woman caused by burns or bodily injury within seven years of marriage in connection with dowry demands.", Category: "offences_against_body", Domain: domain.DomainFamilyLaw, Subdomains: []string{"dowry", "domestic_violence"}},
		{Code: domain.CodePenal, ID: domain.SectionID{Number: 323}, Title: "Punishment for voluntarily causing hurt", Description: "Voluntarily causing hurt to any person.", Category: "offences_against_body", Domain: domain.DomainCriminalLaw, Subdomains: []string{"assault"}},
		{Code: domain.CodePenal, ID: domain.SectionID{Number: 354}, Title: "Assault or criminal force to woman with intent to outrage her modesty", Description: "Assault or use of criminal force intending to outrage the modesty of a woman.", Category: "offences_against_women", Domain: domain.DomainCriminalLaw, Subdomains: []string{"sexual_offence", "assault"}},
		{Code: domain.CodePenal, ID: domain.SectionID{Number: 354, Suffix: "A"}, Title: "Sexual harassment", Description: "Physical contact, unwelcome sexual advances, demand for sexual favours or showing pornography against the will of a woman.", Category: "offences_against_women", Domain: domain.DomainEmploymentLaw, Subdomains: []string{"workplace_harassment", "sexual_offence"}},
		{Code: domain.CodePenal, ID: domain.SectionID{Number: 359}, Title: "Kidnapping", Description: "Kidnapping from India or from lawful guardianship.", Category: "offences_against_body", Domain: domain.DomainCriminalLaw, Subdomains: []string{"kidnapping"}},
		{Code: domain.CodePenal, ID: domain.SectionID{Number: 363}, Title: "Punishment for kidnapping", Description: "Kidnapping any person from India or from lawful guardianship.", Category: "offences_against_body", Domain: domain.DomainCriminalLaw, Subdomains: []string{"kidnapping"}},
		{Code: domain.CodePenal, ID: domain.SectionID{Number: 364, Suffix: "A"}, Title: "Kidnapping for ransom", Description: "Kidnapping or abducting a person and threatening to cause death or hurt to compel payment of ransom.", Category: "offences_against_body", Domain: domain.DomainCriminalLaw, Subdomains: []string{"kidnapping"}},
		{Code: domain.CodePenal, ID: domain.SectionID{Number: 375}, Title: "Rape", Description: "Definition of the offence of rape.", Category: "offences_against_women", Domain: domain.DomainCriminalLaw, Subdomains: []string{"sexual_offence"}},
		{Code: domain.CodePenal, ID: domain.SectionID{Number: 376}, Title: "Punishment for rape", Description: "Rigorous imprisonment for committing rape.", Category: "offences_against_women", Domain: domain.DomainCriminalLaw, Subdomains: []string{"sexual_offence"}},
		{Code: domain.CodePenal, ID: domain.SectionID{Number: 378}, Title: "Theft", Description: "Dishonestly taking movable property out of the possession of any person without consent.", Category: "offences_against_property", Domain: domain.DomainCriminalLaw, Subdomains: []string{"theft_robbery"}},
		{Code: domain.CodePenal, ID: domain.SectionID{Number: 390}, Title: "Robbery", Description: "Theft or extortion involving death, hurt or wrongful restraint or fear thereof.", Category: "offences_against_property", Domain: domain.DomainCriminalLaw, Subdomains: []string{"theft_robbery"}},
		{Code: domain.CodePenal, ID: domain.SectionID{Number: 406}, Title: "Criminal breach of trust", Description: "Dishonest misappropriation of property entrusted to a person.", Category: "offences_against_property", Domain: domain.DomainCriminalLaw, Subdomains: []string{"fraud"}},
		{Code: domain.CodePenal, ID: domain.SectionID{Number: 420}, Title: "Cheating and dishonestly inducing delivery of property", Description: "Cheating and thereby dishonestly inducing the person deceived to deliver property.", Category: "offences_against_property", Domain: domain.DomainCriminalLaw, Subdomains: []string{"fraud"}},
		{Code: domain.CodePenal, ID: domain.SectionID{Number: 441}, Title: "Criminal trespass", Description: "Entering property in the possession of another with intent to commit an offence or intimidate.", Category: "offences_against_property", Domain: domain.DomainPropertyLaw, Subdomains: []string{"encroachment"}},
		{Code: domain.CodePenal, ID: domain.SectionID{Number: 463}, Title: "Forgery", Description: "Making a false document with intent to cause damage or injury.", Category: "offences_against_property", Domain: domain.DomainCriminalLaw, Subdomains: []string{"fraud"}},
		{Code: domain.CodePenal, ID: domain.SectionID{Number: 498, Suffix: "A"}, Title: "Cruelty by husband or relatives of husband", Description: "Subjecting a married woman to cruelty by her husband or his relatives.", Category: "offences_against_women", Domain: domain.DomainFamilyLaw, Subdomains: []string{"domestic_violence", "dowry"}},
		{Code: domain.CodePenal, ID: domain.SectionID{Number: 503}, Title: "Criminal intimidation", Description: "Threatening another with injury to person, reputation or property.", Category: "offences_against_body", Domain: domain.DomainCriminalLaw, Subdomains: []string{"assault"}},

		// Code of Criminal Procedure — process provisions
		{Code: domain.CodeProcedure, ID: domain.SectionID{Number: 41, Suffix: "A"}, Title: "Notice of appearance before police officer", Description: "Police notice requiring appearance where arrest is not required.", Category: "arrest_and_investigation", Domain: domain.DomainCriminalLaw},
		{Code: domain.CodeProcedure, ID: domain.SectionID{Number: 125}, Title: "Order for maintenance of wives, children and parents", Description: "Maintenance for persons unable to maintain themselves.", Category: "maintenance", Domain: domain.DomainFamilyLaw, Subdomains: []string{"maintenance"}},
		{Code: domain.CodeProcedure, ID: domain.SectionID{Number: 154}, Title: "Information in cognizable cases", Description: "Registration of a first information report for a cognizable offence.", Category: "arrest_and_investigation", Domain: domain.DomainCriminalLaw},
		{Code: domain.CodeProcedure, ID: domain.SectionID{Number: 156}, Title: "Police officer's power to investigate cognizable case", Description: "Investigation of cognizable offences without the order of a magistrate.", Category: "arrest_and_investigation", Domain: domain.DomainCriminalLaw},
		{Code: domain.CodeProcedure, ID: domain.SectionID{Number: 438}, Title: "Anticipatory bail", Description: "Direction for grant of bail to a person apprehending arrest.", Category: "bail", Domain: domain.DomainCriminalLaw},
	}
}
