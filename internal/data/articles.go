package data

import "github.com/praj33/Law-Agent-by-Grok-sub003/internal/domain"

// Articles returns the constitutional references table.
func Articles() []domain.ConstitutionArticle {
	return []domain.ConstitutionArticle{
		{Article: "14", Title: "Equality before law", Description: "The State shall not deny to any person equality before the law or the equal protection of the laws.", Domains: []string{domain.DomainConstitutionalLaw, domain.DomainEmploymentLaw}},
		{Article: "15", Title: "Prohibition of discrimination", Description: "Prohibition of discrimination on grounds of religion, race, caste, sex or place of birth.", Domains: []string{domain.DomainConstitutionalLaw, domain.DomainEmploymentLaw}},
		{Article: "19", Title: "Protection of certain rights regarding freedom of speech etc.", Description: "Freedom of speech and expression, assembly, association, movement, residence and profession.", Domains: []string{domain.DomainConstitutionalLaw}},
		{Article: "21", Title: "Protection of life and personal liberty", Description: "No person shall be deprived of his life or personal liberty except according to procedure established by law.", Domains: []string{domain.DomainConstitutionalLaw, domain.DomainCriminalLaw, domain.DomainFamilyLaw, domain.DomainTenantRights}},
		{Article: "21A", Title: "Right to education", Description: "Free and compulsory education for all children of the age of six to fourteen years.", Domains: []string{domain.DomainConstitutionalLaw}},
		{Article: "22", Title: "Protection against arrest and detention", Description: "Safeguards against arbitrary arrest and detention in certain cases.", Domains: []string{domain.DomainConstitutionalLaw, domain.DomainCriminalLaw}},
		{Article: "23", Title: "Prohibition of traffic in human beings and forced labour", Description: "Traffic in human beings, begar and other forms of forced labour are prohibited.", Domains: []string{domain.DomainConstitutionalLaw, domain.DomainEmploymentLaw, domain.DomainCriminalLaw}},
		{Article: "32", Title: "Remedies for enforcement of fundamental rights", Description: "Right to move the Supreme Court for enforcement of fundamental rights.", Domains: []string{domain.DomainConstitutionalLaw}},
		{Article: "39A", Title: "Equal justice and free legal aid", Description: "The State shall secure equal justice and free legal aid for citizens.", Domains: []string{domain.DomainConstitutionalLaw}},
		{Article: "300A", Title: "Right to property", Description: "No person shall be deprived of his property save by authority of law.", Domains: []string{domain.DomainConstitutionalLaw, domain.DomainPropertyLaw, domain.DomainTenantRights}},
	}
}
