package server

// Server объединяет HTTP сервера отдельных сущностей.
type Server struct {
	AppraisalServer
}

func NewServer(
	appraisalServer AppraisalServer,
) Server {
	return Server{
		AppraisalServer: appraisalServer,
	}
}
