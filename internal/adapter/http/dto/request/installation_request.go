package request

type InstallationProposalRequest struct {
	Action string `json:"action" binding:"required"`
}

type InstallationConfirmRequest struct {
	Token string `json:"token" binding:"required"`
}
