package mock

import "net/http/httptest"

type HTTPTestServer struct {
	*AuthenticationService
	Server *httptest.Server
	URL    string
}

func NewHTTPTestServer(opts ...Option) (*HTTPTestServer, error) {
	service, err := NewAuthenticationService(opts...)
	if err != nil {
		return nil, err
	}
	server := &HTTPTestServer{
		AuthenticationService: service,
	}
	server.Server = httptest.NewServer(service.Handler())
	server.URL = server.Server.URL
	return server, nil
}

func (s *HTTPTestServer) Close() {
	if s.Server != nil {
		s.Server.Close()
	}
	s.Server = nil
}
