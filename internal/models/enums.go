package models

type Role string

const (
	RoleMaster  Role = "master"
	RoleManager Role = "manager"
)

func (r Role) Valid() bool {
	switch r {
	case RoleMaster, RoleManager:
		return true
	}
	return false
}

type PartnerType string

const (
	PartnerTypeAgency PartnerType = "imobiliaria"
	PartnerTypeBroker PartnerType = "corretor"
)

func (t PartnerType) Valid() bool {
	switch t {
	case PartnerTypeAgency, PartnerTypeBroker:
		return true
	}
	return false
}

type Classification string

const (
	ClassificationGold   Classification = "ouro"
	ClassificationSilver Classification = "prata"
	ClassificationBronze Classification = "bronze"
)

func (c Classification) Valid() bool {
	switch c {
	case ClassificationGold, ClassificationSilver, ClassificationBronze:
		return true
	}
	return false
}

type Relationship string

const (
	RelationshipCold      Relationship = "frio"
	RelationshipWarm      Relationship = "morno"
	RelationshipHot       Relationship = "quente"
	RelationshipStrategic Relationship = "estrategico"
)

func (r Relationship) Valid() bool {
	switch r {
	case RelationshipCold, RelationshipWarm, RelationshipHot, RelationshipStrategic:
		return true
	}
	return false
}

type PartnerStatus string

const (
	PartnerStatusActive   PartnerStatus = "ativo"
	PartnerStatusInactive PartnerStatus = "inativo"
)

func (s PartnerStatus) Valid() bool {
	switch s {
	case PartnerStatusActive, PartnerStatusInactive:
		return true
	}
	return false
}

type InteractionType string

const (
	InteractionWhatsapp         InteractionType = "whatsapp"
	InteractionCall             InteractionType = "ligacao"
	InteractionOnlineMeeting    InteractionType = "reuniao_online"
	InteractionInPersonMeeting  InteractionType = "reuniao_presencial"
	InteractionTechnicalVisit   InteractionType = "visita_tecnica"
	InteractionTraining         InteractionType = "treinamento"
	InteractionStrategicLunch   InteractionType = "almoco_estrategico"
	InteractionMaterialDelivery InteractionType = "entrega_material"
)

func (t InteractionType) Valid() bool {
	switch t {
	case InteractionWhatsapp, InteractionCall, InteractionOnlineMeeting, InteractionInPersonMeeting,
		InteractionTechnicalVisit, InteractionTraining, InteractionStrategicLunch, InteractionMaterialDelivery:
		return true
	}
	return false
}
