package entities

// Rotation is a sequence of dashboards displayed one after the other.
// The token is assigned by the backend and never changed by the frontend.
type Rotation struct {
	ID               int64             `json:"id"`
	Token            string            `json:"token"`
	Name             string            `json:"name"`
	ProgressBar      bool              `json:"progressBar"`
	RotationProjects []RotationProject `json:"rotationProjects,omitempty"`
}

// RotationRequest holds the rotation fields the frontend is allowed to set.
// It has no token since none is assigned before creation.
type RotationRequest struct {
	Name        string `json:"name" form:"name" binding:"required"`
	ProgressBar bool   `json:"progressBar" form:"progressBar"`
}

// RotationProject is a dashboard taking part in a rotation
type RotationProject struct {
	ID           int64   `json:"id"`
	RotationTime int     `json:"rotationTime"`
	Project      Project `json:"project"`
}

// RotationProjectRequest adds a dashboard to a rotation for the given time (in seconds)
type RotationProjectRequest struct {
	ProjectToken string `json:"projectToken"`
	RotationTime int    `json:"rotationTime"`
}

// Project is a dashboard
type Project struct {
	ID    int64  `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name"`
}

// RotationPage is one page of the paginated rotation list
type RotationPage struct {
	Content       []Rotation `json:"content"`
	TotalElements int64      `json:"totalElements"`
	TotalPages    int        `json:"totalPages"`
	Number        int        `json:"number"`
	Size          int        `json:"size"`
}

// WebsocketClient is a screen connected to a rotation through a websocket
type WebsocketClient struct {
	SessionID     string `json:"sessionId"`
	ProjectToken  string `json:"projectToken"`
	RotationToken string `json:"rotationToken"`
	ScreenCode    string `json:"screenCode"`
}
