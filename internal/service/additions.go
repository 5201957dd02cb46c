package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"htcpcp/internal/models"
	"htcpcp/internal/repository"
)

// AdditionValidator decides whether a requested addition set is acceptable.
// Pot state never matters here: refusal is about the request, not the
// appliance's contents.
type AdditionValidator struct {
	vocab models.AdditionVocabulary
}

func NewAdditionValidator(vocab models.AdditionVocabulary) *AdditionValidator {
	if vocab == nil {
		vocab = models.DefaultVocabulary()
	}
	return &AdditionValidator{vocab: vocab}
}

// Validate returns nil when the set is acceptable, otherwise a Rejection.
// RFC 2324 §2.1.1: decaf=true is refused before anything else is considered.
// Unknown keys and out-of-vocabulary values are refused; accepted additions
// compose freely (milk plus whisky is an Irish coffee, not a conflict).
func (v *AdditionValidator) Validate(additions models.Additions) *models.Rejection {
	if raw, ok := additions["decaf"]; ok {
		if b, err := strconv.ParseBool(raw); err == nil && b {
			return &models.Rejection{
				Reason: models.ReasonDecafUnsupported,
				Detail: "Decaffeinated coffee? What's the point?",
			}
		}
		return &models.Rejection{
			Reason: models.ReasonInvalidAddition,
			Detail: fmt.Sprintf("decaf=%s is not a recognised addition", raw),
		}
	}

	var unsupported []string
	for key, val := range additions {
		allowed, known := v.vocab[key]
		if !known {
			unsupported = append(unsupported, key+"="+val)
			continue
		}
		found := false
		for _, a := range allowed {
			if a == val {
				found = true
				break
			}
		}
		if !found {
			unsupported = append(unsupported, key+"="+val)
		}
	}
	if len(unsupported) > 0 {
		sort.Strings(unsupported) // map order is random; keep the detail stable
		return &models.Rejection{
			Reason: models.ReasonInvalidAddition,
			Detail: "unsupported additions: " + strings.Join(unsupported, ", "),
		}
	}
	return nil
}

// AdditionsService answers PROPFIND: the vocabulary a pot accepts. The
// vocabulary is the same for every pot and independent of pot state; the pot
// id only gates existence.
type AdditionsService struct {
	pots  repository.PotRegistry
	vocab models.AdditionVocabulary
}

func NewAdditionsService(pots repository.PotRegistry, vocab models.AdditionVocabulary) *AdditionsService {
	if vocab == nil {
		vocab = models.DefaultVocabulary()
	}
	return &AdditionsService{pots: pots, vocab: vocab}
}

func (s *AdditionsService) Vocabulary(potID string) (models.AdditionVocabulary, error) {
	if _, err := s.pots.Lookup(potID); err != nil {
		return nil, err
	}
	return s.vocab.Clone(), nil
}

// Keys lists the addition keys in stable order, for the registry view.
func (s *AdditionsService) Keys() []string {
	keys := make([]string, 0, len(s.vocab))
	for k := range s.vocab {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
