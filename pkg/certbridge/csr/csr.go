// Package csr inspects PEM encoded certificate signing requests and issued
// certificate chains without calling out to a CA provider.
package csr

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"strings"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
)

// CSRInfo is the locally decoded summary of a certificate signing request.
type CSRInfo struct {
	CommonName         string   `json:"common_name"`
	Organization       []string `json:"organization,omitempty"`
	Country            []string `json:"country,omitempty"`
	DNSNames           []string `json:"dns_names,omitempty"`
	SignatureAlgorithm string   `json:"signature_algorithm"`
	PublicKeyAlgorithm string   `json:"public_key_algorithm"`
}

// CertificateInfo summarizes the leaf of an issued certificate chain.
type CertificateInfo struct {
	Subject     string   `json:"subject"`
	Issuer      string   `json:"issuer"`
	Domains     []string `json:"domains,omitempty"`
	NotBefore   int64    `json:"not_before"`
	NotAfter    int64    `json:"not_after"`
	ChainLength int      `json:"chain_length"`
}

// InspectCSR decodes a PEM encoded CSR and checks its self signature.
func InspectCSR(pemData []byte) (CSRInfo, error) {
	pemBlock, _ := pem.Decode(pemData)
	if pemBlock == nil {
		return CSRInfo{}, fmt.Errorf("invalid certificate request PEM%w", model.ErrInvalidParameter)
	}

	request, err := x509.ParseCertificateRequest(pemBlock.Bytes)
	if err != nil {
		return CSRInfo{}, fmt.Errorf("fail to parse certificate request: %s%w", err.Error(), model.ErrInvalidParameter)
	}
	if err := request.CheckSignature(); err != nil {
		return CSRInfo{}, fmt.Errorf("certificate request signature check failed: %s%w", err.Error(), model.ErrInvalidParameter)
	}

	return CSRInfo{
		CommonName:         request.Subject.CommonName,
		Organization:       request.Subject.Organization,
		Country:            request.Subject.Country,
		DNSNames:           request.DNSNames,
		SignatureAlgorithm: request.SignatureAlgorithm.String(),
		PublicKeyAlgorithm: request.PublicKeyAlgorithm.String(),
	}, nil
}

// MatchesDomain reports whether the CSR covers the given domain, either through
// the common name or a SAN entry. A wildcard name covers one label below it.
func (i CSRInfo) MatchesDomain(domain string) bool {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return false
	}

	names := make([]string, 0, len(i.DNSNames)+1)
	if i.CommonName != "" {
		names = append(names, i.CommonName)
	}
	names = append(names, i.DNSNames...)

	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == domain {
			return true
		}
		if strings.HasPrefix(name, "*.") {
			if idx := strings.Index(domain, "."); idx > 0 && domain[idx+1:] == name[2:] {
				return true
			}
		}
	}
	return false
}

// InspectCertificate parses a PEM chain and summarizes its leaf. The first
// certificate in the chain is expected to be the end-entity certificate.
func InspectCertificate(pemData []byte) (CertificateInfo, error) {
	certs, err := parseChain(pemData)
	if err != nil {
		return CertificateInfo{}, err
	}

	leaf := certs[0]
	return CertificateInfo{
		Subject:     leaf.Subject.CommonName,
		Issuer:      leaf.Issuer.CommonName,
		Domains:     leaf.DNSNames,
		NotBefore:   leaf.NotBefore.Unix(),
		NotAfter:    leaf.NotAfter.Unix(),
		ChainLength: len(certs),
	}, nil
}

func parseChain(pemData []byte) ([]*x509.Certificate, error) {
	certs := make([]*x509.Certificate, 0, 4)
	for {
		pemBlock, remains := pem.Decode(pemData)
		if pemBlock == nil {
			break
		}

		cert, err := x509.ParseCertificate(pemBlock.Bytes)
		if err != nil {
			return nil, fmt.Errorf("fail to parse certificate: %s%w", err.Error(), model.ErrInvalidParameter)
		}
		certs = append(certs, cert)
		pemData = remains
	}

	if len(certs) == 0 {
		return nil, fmt.Errorf("invalid certificate PEM%w", model.ErrInvalidParameter)
	}
	return certs, nil
}
