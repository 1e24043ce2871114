package config

// Server is the configuration of the search key server.
type Server struct {
	Addr    string `yaml:"addr"`
	TLSCert string `yaml:"tlsCert"`
	TLSKey  string `yaml:"tlsKey"`
}
