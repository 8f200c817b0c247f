package catalog

import (
	"fmt"

	"go-acoustics-backend/internal/domain"
)

// services is the authoritative catalog of offered services. Navigation,
// the home page and the detail pages all derive from this list.
var services = []domain.Service{
	{
		Key:             "noise-survey",
		Title:           "Noise Survey",
		Slug:            "noise-survey",
		CardDescription: "Low cost, accurate noise surveys, workplace noise and noise monitoring for all scenarios.",
		Description: `We provide low-cost, comprehensive noise survey and noise modelling services across the UK. Whether you need an environmental noise survey for a feasibility study or planning application, a workplace noise assessment, or ongoing monitoring for an operational site, our experienced acoustic consultants deliver fast, accurate results you can rely on.

All surveys are carried out by friendly, qualified engineers using precision instrumentation in accordance with current British Standards and best practice guidance, including BS7445, BS8233 and BS4142 where applicable.

Using modern, efficient survey and analysis processes, we deliver results that are both technically robust and easy to understand. Our streamlined approach ensures accuracy, quick turnaround times and exceptional value. From early design advice to compliance reporting, we help clients make informed, confident decisions at every project stage.`,
		ImageID:  "service-noise-survey",
		IconName: "AudioLines",
	},
	{
		Key:             "noise-impact-assessment",
		Title:           "Noise Impact Assessment",
		Slug:            "noise-impact-assessment",
		CardDescription: "Comprehensive noise assessments for all design and planning needs.",
		Description: `Whether you need a noise impact assessment to support your planning application, to inform the design of your scheme, or to demonstrate compliance with specific performance requirements, we can help. Our consultants have years of experience delivering noise impact assessments for a wide range of projects across the built environment and would love to see how we can help you.

Each assessment is prepared in accordance with relevant standards and guidance, including BS8233, BS4142, BS5228, ProPG, and local planning policy, ensuring clarity, accuracy and compliance. We assess the potential impact of noise from transport, industrial and mechanical sources on proposed developments, and provide practical, design-led mitigation advice on layout, façade performance and specification.

By maintaining close communication with planning officers, design teams and environmental health professionals, we help streamline the approval process and minimise risk. Our clear, evidence-based reporting ensures robust, policy-compliant outcomes at every stage of design and planning.`,
		ImageID:  "service-noise-impact-assessment",
		IconName: "ChartColumn",
	},
	{
		Key:             "acoustic-planning-support",
		Title:           "Acoustic Planning Support",
		Slug:            "acoustic-planning-support",
		CardDescription: "Expert acoustic support to help navigate the planning process.",
		Description: `We provide expert acoustic planning support across the UK, helping developers, architects, planning consultants and private clients navigate the complex acoustic requirements of the planning system. Our input covers site suitability, layout optimisation, noise mitigation and compliance with national and regional planning policies.

Combining extensive technical expertise with strategic planning insight, each assessment delivers robust analysis, compliant reporting and, where required, practical mitigation solutions that support successful planning outcomes.

From feasibility through to full planning submission, we prepare clear, robust technical documentation that stands up to scrutiny and liaise with design teams, planning consultants and local authorities to facilitate smooth approvals.`,
		ImageID:  "service-acoustic-planning-support",
		IconName: "SquareCheckBig",
	},
	{
		Key:             "building-acoustics",
		Title:           "Building Acoustics",
		Slug:            "building-acoustics",
		CardDescription: "Building acoustic design for all sectors of the built environment.",
		Description: `Our Building Acoustics services support architects, designers and developers in creating buildings that meet regulatory standards, safeguard health and wellbeing, and deliver environments where people can truly thrive.

We design and review façade performance and building services noise to achieve appropriate indoor ambient noise levels. We assess layouts, materials and junction details to control airborne, impact and flanking sound transmission, and carefully design room acoustics to meet end-user expectations for comfort and usability — ensuring spaces sound as good as they look.

Each project is approached with technical rigour, following relevant standards and guidance such as Approved Document E, BREEAM, BS8233, BB93 and HTM 08-01 to ensure robust, compliant and verifiable design outcomes.

From small residential conversions to large mixed-use developments, schools to healthcare facilities, and offices to community and leisure spaces, we provide clear, practical acoustic design advice from concept to completion — helping reduce overdesign, manage risk and achieve sustainable performance.`,
		ImageID:  "service-architectural-acoustics",
		IconName: "Building2",
	},
	{
		Key:             "acoustic-consultant",
		Title:           "Acoustic Consultancy",
		Slug:            "acoustic-consultancy",
		CardDescription: "Independent, practical, and reliable acoustic consultancy from concept to completion.",
		Description: `Veas Acoustics offers independent, practical and reliable acoustic consultancy across the full project lifecycle, from early feasibility to detailed design, construction and commissioning.

With 20 years of experience, we deliver tailored acoustic solutions that meet performance, regulatory and sustainability goals. Our expertise spans environmental, building services and architectural acoustics, providing technical clarity and responsive advice.

Whether advising on noise strategy, acoustic design or on-site support and testing, our focus is on delivering value through precision, collaboration and efficiency — ensuring every project benefits from acoustic excellence at every stage.`,
		ImageID:  "service-acoustic-consultant",
		IconName: "Handshake",
	},
}

// ServiceCatalog is the immutable in-memory service list.
type ServiceCatalog struct {
	all    []domain.Service
	bySlug map[string]*domain.Service
}

// NewServiceCatalog builds the catalog and verifies its invariants: unique
// slugs and keys, and icon names from the closed icon set.
func NewServiceCatalog() (*ServiceCatalog, error) {
	c := &ServiceCatalog{
		all:    services,
		bySlug: make(map[string]*domain.Service, len(services)),
	}

	seenKeys := make(map[string]struct{}, len(services))
	for i := range c.all {
		s := &c.all[i]
		if _, dup := c.bySlug[s.Slug]; dup {
			return nil, fmt.Errorf("duplicate service slug %q", s.Slug)
		}
		if _, dup := seenKeys[s.Key]; dup {
			return nil, fmt.Errorf("duplicate service key %q", s.Key)
		}
		if _, ok := LookupIcon(s.IconName); !ok {
			return nil, fmt.Errorf("service %q references unknown icon %q", s.Key, s.IconName)
		}
		c.bySlug[s.Slug] = s
		seenKeys[s.Key] = struct{}{}
	}

	return c, nil
}

// All returns the full catalog in authored order.
func (c *ServiceCatalog) All() []domain.Service {
	out := make([]domain.Service, len(c.all))
	copy(out, c.all)
	return out
}

// Cards projects the catalog into homepage/navigation card data.
func (c *ServiceCatalog) Cards() []domain.ServiceCard {
	cards := make([]domain.ServiceCard, 0, len(c.all))
	for _, s := range c.all {
		cards = append(cards, domain.ServiceCard{
			Name:        s.Title,
			Slug:        s.Slug,
			Href:        "/services/" + s.Slug,
			Description: s.CardDescription,
			IconName:    IconOrDefault(s.IconName),
		})
	}
	return cards
}

// BySlug returns the service for a navigation slug.
func (c *ServiceCatalog) BySlug(slug string) (*domain.Service, bool) {
	s, ok := c.bySlug[slug]
	return s, ok
}
