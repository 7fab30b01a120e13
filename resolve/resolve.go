//Package resolve maps free-text compound names to canonical formulas through
//the PubChem PUG REST service. The resolved formula is always re-parsed and
//its weight recomputed locally, so everything downstream works from an
//internally consistent composition no matter what the service reports.
package resolve

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mferrada/solprep"
)

//Record is a resolved compound. ReportedMW is whatever the service said and
//is kept for display only; MW is recomputed from Composition, which in turn
//is re-parsed from Formula, and those two are what calculations should use.
type Record struct {
	Query      string
	Name       string
	CID        int
	Formula    string
	ReportedMW float64
	Synonyms   []string

	Composition solprep.Composition
	MW          float64
}

//Resolver maps a compound name to a Record. Implementations return an error
//of kind solprep.ErrNotResolved when the name is simply not known, as
//opposed to transport failures.
type Resolver interface {
	Resolve(ctx context.Context, query string) (*Record, error)
}

const defaultBaseURL = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"

//PubChem resolves names through the PubChem PUG REST API.
type PubChem struct {
	BaseURL string       //empty means the public PubChem endpoint
	Client  *http.Client //nil means http.DefaultClient
}

func NewPubChem() *PubChem {
	return &PubChem{BaseURL: defaultBaseURL, Client: &http.Client{}}
}

//Wire shapes of the two PUG REST responses we touch. PubChem sends
//MolecularWeight as a JSON string.
type propertyTable struct {
	PropertyTable struct {
		Properties []struct {
			CID              int    `json:"CID"`
			MolecularFormula string `json:"MolecularFormula"`
			MolecularWeight  string `json:"MolecularWeight"`
			Title            string `json:"Title"`
		} `json:"Properties"`
	} `json:"PropertyTable"`
}

type synonymList struct {
	InformationList struct {
		Information []struct {
			CID     int      `json:"CID"`
			Synonym []string `json:"Synonym"`
		} `json:"Information"`
	} `json:"InformationList"`
}

//Resolve queries PubChem for the compound named by query. The returned
//record's Composition and MW come from the local parser, not from the
//service; a formula the parser rejects is surfaced as that parse error.
func (p *PubChem) Resolve(ctx context.Context, query string) (*Record, error) {
	base := p.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	u := fmt.Sprintf("%s/compound/name/%s/property/MolecularFormula,MolecularWeight,Title/JSON",
		base, url.PathEscape(query))
	var table propertyTable
	if err := p.getJSON(ctx, u, &table); err != nil {
		return nil, err
	}
	props := table.PropertyTable.Properties
	if len(props) == 0 {
		return nil, solprep.NewError(solprep.ErrNotResolved, "resolve: no compound found for %q", query)
	}
	first := props[0]
	rec := &Record{
		Query:   query,
		Name:    first.Title,
		CID:     first.CID,
		Formula: first.MolecularFormula,
	}
	if w, err := strconv.ParseFloat(first.MolecularWeight, 64); err == nil {
		rec.ReportedMW = w
	}
	comp, err := solprep.ParseFormula(rec.Formula)
	if err != nil {
		if e, ok := err.(solprep.Error); ok {
			e.Decorate("Resolve")
		}
		return nil, err
	}
	rec.Composition = comp
	rec.MW = comp.Weight()
	//synonyms are nice to have; losing them doesn't fail the resolution
	var syn synonymList
	su := fmt.Sprintf("%s/compound/cid/%d/synonyms/JSON", base, rec.CID)
	if err := p.getJSON(ctx, su, &syn); err == nil && len(syn.InformationList.Information) > 0 {
		rec.Synonyms = syn.InformationList.Information[0].Synonym
	}
	return rec, nil
}

func (p *PubChem) getJSON(ctx context.Context, u string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return solprep.NewError(solprep.ErrNotResolved, "resolve: nothing found at %s", u)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("resolve: %s returned %s", u, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
