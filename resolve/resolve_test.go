package resolve

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mferrada/solprep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakePubChem(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/compound/name/caffeine/property/MolecularFormula,MolecularWeight,Title/JSON",
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"PropertyTable":{"Properties":[
				{"CID":2519,"MolecularFormula":"C8H10N4O2","MolecularWeight":"194.19","Title":"Caffeine"}]}}`))
		})
	mux.HandleFunc("/compound/cid/2519/synonyms/JSON",
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"InformationList":{"Information":[
				{"CID":2519,"Synonym":["caffeine","1,3,7-trimethylxanthine"]}]}}`))
		})
	mux.HandleFunc("/compound/name/garbage/property/MolecularFormula,MolecularWeight,Title/JSON",
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"PropertyTable":{"Properties":[
				{"CID":1,"MolecularFormula":"notaformula","MolecularWeight":"1.0","Title":"Garbage"}]}}`))
		})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	return httptest.NewServer(mux)
}

func TestResolve(t *testing.T) {
	srv := fakePubChem(t)
	defer srv.Close()
	p := &PubChem{BaseURL: srv.URL, Client: srv.Client()}

	rec, err := p.Resolve(context.Background(), "caffeine")
	require.NoError(t, err)
	assert.Equal(t, "Caffeine", rec.Name)
	assert.Equal(t, 2519, rec.CID)
	assert.Equal(t, "C8H10N4O2", rec.Formula)
	assert.Equal(t, 194.19, rec.ReportedMW)
	assert.Contains(t, rec.Synonyms, "1,3,7-trimethylxanthine")

	//the composition and MW must come from the local parser, not the service
	assert.Equal(t, solprep.Composition{"C": 8, "H": 10, "N": 4, "O": 2}, rec.Composition)
	assert.InDelta(t, 194.19, rec.MW, 0.01)
}

func TestResolveNotFound(t *testing.T) {
	srv := fakePubChem(t)
	defer srv.Close()
	p := &PubChem{BaseURL: srv.URL, Client: srv.Client()}

	_, err := p.Resolve(context.Background(), "unobtainium")
	require.Error(t, err)
	assert.Equal(t, solprep.ErrNotResolved, solprep.KindOf(err))
}

//A formula the service reports but the parser rejects must fail the
//resolution: the collaborator's data is never trusted blindly.
func TestResolveBadFormula(t *testing.T) {
	srv := fakePubChem(t)
	defer srv.Close()
	p := &PubChem{BaseURL: srv.URL, Client: srv.Client()}

	_, err := p.Resolve(context.Background(), "garbage")
	require.Error(t, err)
	assert.Equal(t, solprep.ErrSyntax, solprep.KindOf(err))
}
