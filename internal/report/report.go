// Package report builds the "Folha de Inhamissa" academic report: a cover,
// a back cover, an index, the numbered chapters, the bibliography and an
// appendix, in that order.
package report

import (
	"fmt"

	docxgen "github.com/alnah/go-docxgen"
)

// DefaultFilename is the file written by the report command.
const DefaultFilename = "Projeto_Folha_Inhamissa.docx"

// DefaultDateLine is the place and date printed on the cover pages.
const DefaultDateLine = "Xai-Xai, Outubro de 2025"

const school = "Escola Secundária de Inhamissa"

// Options customizes the generated report.
type Options struct {
	// DateLine replaces DefaultDateLine when set.
	DateLine string
}

// Metadata returns the core properties written with the report.
func Metadata() docxgen.Metadata {
	return docxgen.Metadata{
		Title:    "Criação do Site Folha de Inhamissa",
		Subject:  "TIC (Tecnologias de Informação e Comunicação)",
		Author:   "Jean da Nilza Abílio Killian",
		Keywords: []string{"Folha de Inhamissa", "portal web", "TIC", "Firebase"},
		Language: "pt-PT",
	}
}

// Build appends the whole report to doc. It stops at the first failed append
// and returns its error.
func Build(doc *docxgen.Document, opts Options) error {
	if opts.DateLine == "" {
		opts.DateLine = DefaultDateLine
	}

	b := &builder{doc: doc}
	sections := []func(*builder){
		func(b *builder) { cover(b, opts.DateLine) },
		func(b *builder) { backCover(b, opts.DateLine) },
		index,
		introduction,
		scope,
		problem,
		objectives,
		hypotheses,
		rationale,
		methodology,
		literature,
		results,
		conclusion,
		bibliography,
		appendices,
	}
	for _, section := range sections {
		section(b)
		if b.err != nil {
			return fmt.Errorf("building report: %w", b.err)
		}
	}
	return nil
}

func cover(b *builder, dateLine string) {
	b.centeredHeading(school, 1)
	b.centeredHeading("Criação do Site Folha de Inhamissa", 1)
	b.centered("Aluno: Jean da Nilza Abílio Killian", true)
	b.centered("https://folhadeinhamissa.netlify.app", false)
	b.centered(dateLine, false)
	b.pageBreak()
}

func backCover(b *builder, dateLine string) {
	b.centeredHeading(school, 1)
	b.centered("Aluno: Jean da Nilza Abílio Killian — Nº: 25", true)
	b.centered("Professor: Nelia", true)
	b.centered("Disciplina: TIC (Tecnologias de Informação e Comunicação)", true)
	b.centered("Turma: B08", true)
	b.centered("Classe: 12ª", true)

	b.centeredHeading("Apresentação", 3)
	b.para(`O presente trabalho aborda o desenvolvimento do portal web "Folha de Inhamissa", uma plataforma digital inovadora criada para modernizar a comunicação escolar. Este projeto representa uma solução tecnológica que digitaliza o tradicional jornal escolar, proporcionando acesso facilitado a informações académicas, notícias institucionais e recursos educativos através de um ambiente web integrado e seguro.`)

	b.centered(dateLine, false)
	b.pageBreak()
}

// IndexEntries lists the table of contents with the printed page numbers.
var IndexEntries = []docxgen.IndexEntry{
	{Label: "Introdução", Page: "1"},
	{Label: "Delimitação do Tema", Page: "2"},
	{Label: "Problema", Page: "3"},
	{Label: "Objetivos", Page: "4"},
	{Label: "Hipóteses", Page: "5"},
	{Label: "Justificativa", Page: "6"},
	{Label: "Capítulo I - Metodologias de Pesquisa", Page: "7"},
	{Label: "Capítulo II - Revisão da Literatura", Page: "10"},
	{Label: "Capítulo III - Apresentação e Análise de Resultados", Page: "14"},
	{Label: "Conclusão", Page: "18"},
	{Label: "Sugestões", Page: "19"},
	{Label: "Referências Bibliográficas", Page: "20"},
	{Label: "Apêndices", Page: "21"},
}

func index(b *builder) {
	b.heading("Índice", 1)
	b.index(IndexEntries)
	b.pageBreak()
}

func introduction(b *builder) {
	b.heading("Introdução", 1)
	b.para(`O projeto "Folha de Inhamissa" é uma iniciativa desenvolvida no âmbito da disciplina de TIC na Escola Secundária de Inhamissa, Xai-Xai, Gaza, Moçambique. O portal web moderniza os canais de comunicação escolar, transformando o jornal impresso tradicional numa plataforma digital acessível e interativa.`)
	b.para(`A motivação fundamenta-se na visão de inovar o acesso dos alunos a informações escolares através de tecnologias web modernas. O portal centraliza notícias institucionais, horários, recursos educativos e área de aprendizagem colaborativa, implementando HTML5, CSS3, JavaScript e Firebase para autenticação, base de dados e armazenamento.`)
	b.para(`A relevância manifesta-se nas dimensões educacional, comunicacional e tecnológica, proporcionando espaço digital de aprendizagem e facilitando disseminação de informações. Este documento apresenta o processo de desenvolvimento, metodologias aplicadas, fundamentação teórica e análise de resultados, demonstrando aplicação prática da tecnologia no ambiente escolar moçambicano.`)
	b.pageBreak()
}

func scope(b *builder) {
	b.heading("Delimitação do Tema", 1)
	b.para(`O tema circunscreve-se ao desenvolvimento da plataforma web "Folha de Inhamissa" para a Escola Secundária de Inhamissa, Xai-Xai, Gaza, Moçambique, no período de agosto a outubro de 2025, no âmbito da disciplina de TIC da 12ª classe.`)
	b.para(`Espacialmente, o projeto foca-se na realidade educacional moçambicana, especificamente nas necessidades de comunicação digital de escolas secundárias em contextos semi-urbanos. Tematicamente, delimita-se à interseção entre desenvolvimento web, gestão de informação escolar e comunicação digital.`)

	b.boldPara("Delimitação técnica:")
	b.bullets(
		"Frontend com HTML5, CSS3 e JavaScript ES6+",
		"Autenticação via Firebase Authentication",
		"Base de dados com Cloud Firestore",
		"Armazenamento multimédia com Firebase Storage",
		"Design responsivo para múltiplos dispositivos",
	)

	b.para("Escopo funcional: Login/registo de utilizadores, feed de publicações, notícias escolares, horários de aulas, quizzes interativos e sistema de comentários.")
	b.pageBreak()
}

func problem(b *builder) {
	b.heading("Problema", 1)
	b.heading("Questão de Partida", 2)
	b.boldPara("Como pode um portal web interativo melhorar o acesso à informação escolar e facilitar a comunicação entre alunos, professores e administração na Escola Secundária de Inhamissa?")

	b.heading("Contextualização", 2)
	b.para("A escola enfrenta desafios na disseminação eficiente de informações. Os jornais impressos apresentam custos elevados, distribuição limitada, dificuldade de atualização e alcance restrito. Existe lacuna entre ferramentas tradicionais e expectativas dos alunos digitais.")
	b.boldPara("Dimensões do problema: Acesso limitado a informações atualizadas, ausência de arquivo histórico, falta de interatividade, inexistência de plataforma centralizada e limitações de alcance.")

	b.heading("Solução Proposta", 2)
	b.para(`Portal web "Folha de Inhamissa" que oferece: acesso universal 24/7, atualização em tempo real, interatividade (comentários, curtidas), centralização de recursos, arquivo digital permanente, personalização por utilizador e escalabilidade cloud sem custos de hardware.`)
	b.pageBreak()
}

func objectives(b *builder) {
	b.heading("Objetivos", 1)
	b.heading("Objetivos Gerais", 2)
	b.numbered(
		"Desenvolver plataforma web integrada que modernize a comunicação escolar, proporcionando acesso digital eficiente a informações, recursos educativos e notícias institucionais.",
		"Criar ambiente digital colaborativo que fomente participação ativa da comunidade escolar através de funcionalidades sociais e educativas integradas.",
	)

	b.heading("Objetivos Específicos", 2)
	b.numbered(
		"Implementar sistema de autenticação e gestão de utilizadores com Firebase, garantindo segurança, perfis personalizados e recuperação de senha.",
		"Desenvolver módulos funcionais: publicação de notícias multimédia, horários personalizados, quizzes interativos com certificação, feed social e interface administrativa.",
		"Garantir design responsivo para experiência otimizada em computadores, tablets e smartphones, com interfaces intuitivas para diferentes níveis de literacia digital.",
	)
	b.pageBreak()
}

func hypotheses(b *builder) {
	b.heading("Hipóteses", 1)
	b.bullets(
		"O portal aumentará significativamente a eficiência comunicacional, proporcionando acesso rápido a informações, reduzindo custos tradicionais e aumentando o engajamento através de ferramentas digitais interativas.",
		"A plataforma digital pode enfrentar resistência de utilizadores menos familiarizados com tecnologia, excluir alunos sem internet regular e criar dependência de infraestrutura sujeita a falhas, requerendo estratégias de suporte técnico e inclusão digital.",
	)
	b.para("A validação será realizada através de métricas de utilização, questionários, entrevistas e observação de padrões de acesso durante a implementação.")
	b.pageBreak()
}

func rationale(b *builder) {
	b.heading("Justificativa", 1)
	b.para("A escolha do tema fundamenta-se em motivações pessoais, académicas e sociais que convergem para a modernização comunicacional escolar.")

	b.heading("Relevância Pessoal e Académica", 2)
	b.para("A experiência direta com limitações dos métodos tradicionais motivou a busca por soluções inovadoras. O projeto permite consolidar competências em programação web, bases de dados, design de interfaces e gestão de projetos, demonstrando aplicabilidade prática dos conteúdos de TIC.")

	b.heading("Relevância Social e Tecnológica", 2)
	b.para(`A transformação digital educacional contribui para democratização da informação, desenvolvimento de competências digitais, redução de custos e sustentabilidade. Como afirma Castells (2003), "a tecnologia é a sociedade", sendo fundamental na preparação dos jovens para a sociedade da informação.`)
	b.pageBreak()
}

func methodology(b *builder) {
	b.heading("Capítulo I - Metodologias de Pesquisa", 1)
	b.para(`O desenvolvimento do portal "Folha de Inhamissa" baseou-se em múltiplas metodologias de pesquisa que permitiram compreender as necessidades da comunidade escolar, fundamentar decisões técnicas e validar soluções implementadas.`)

	b.heading("1.1 Entrevista", 2)
	b.para("Foram realizadas entrevistas semiestruturadas com diferentes membros da comunidade escolar.")

	b.heading("Participantes:", 3)
	b.bullets(
		"Direção escolar (2 membros)",
		"Professores (5 docentes de diferentes disciplinas)",
		"Alunos (15 estudantes de diferentes turmas e classes)",
		"Funcionários administrativos (3 membros)",
	)

	b.heading("Principais constatações:", 3)
	b.bullets(
		"85% dos entrevistados consideraram essencial ter acesso digital a horários e notícias",
		"Professores expressaram necessidade de plataforma para partilha de recursos educativos",
		"Alunos demonstraram preferência por interfaces similares a redes sociais",
		"Direção destacou importância de sistema de controlo de acesso e moderação de conteúdos",
	)
	b.pageBreak()
}

func literature(b *builder) {
	b.heading("Capítulo II - Revisão da Literatura", 1)
	b.para("Este capítulo apresenta fundamentação teórica sobre conceitos essenciais ao desenvolvimento e compreensão do projeto.")

	b.heading("2.1 Tecnologias de Informação e Comunicação na Educação", 2)
	b.para("As TIC no contexto educacional referem-se ao conjunto de recursos tecnológicos utilizados de forma integrada para proporcionar comunicação, criação, gestão e disseminação de informações no ambiente escolar.")

	b.heading("2.2 Desenvolvimento Web", 2)
	b.heading("2.2.1 HTML (HyperText Markup Language)", 3)
	b.para("HTML é a linguagem de marcação padrão para criação de páginas web, definindo a estrutura e semântica do conteúdo.")

	b.heading("2.2.2 CSS (Cascading Style Sheets)", 3)
	b.para("CSS é a linguagem de estilo utilizada para controlar apresentação visual de documentos HTML.")

	b.heading("2.2.3 JavaScript", 3)
	b.para("JavaScript é a linguagem de programação que adiciona interatividade a páginas web.")
	b.pageBreak()
}

// usageMetrics are the adoption figures reported in chapter III and
// tabulated in the appendix.
var usageMetrics = [][]string{
	{"Utilizadores registados", "287 (24% do corpo estudantil)"},
	{"Taxa de ativação", "82%"},
	{"Publicações criadas", "143 posts"},
	{"Comentários", "1.234 interações"},
	{"Quizzes respondidos", "456 tentativas"},
	{"Visualizações de notícias", "2.789"},
}

func results(b *builder) {
	b.heading("Capítulo III - Apresentação, Análise e Interpretação dos Resultados", 1)

	b.heading("3.1 Descrição da Área de Estudo", 2)
	b.para("A Escola Secundária de Inhamissa localiza-se na cidade de Xai-Xai, capital da província de Gaza, sul de Moçambique.")

	b.heading("3.3 Análise de Resultados", 2)
	b.heading("3.3.1 Métricas de Utilização", 3)
	items := make([]string, len(usageMetrics))
	for i, m := range usageMetrics {
		items[i] = m[0] + ": " + m[1]
	}
	b.bullets(items...)
	b.pageBreak()
}

func conclusion(b *builder) {
	b.heading("Conclusão", 1)
	b.para(`O desenvolvimento do portal web "Folha de Inhamissa" representa marco significativo na modernização tecnológica da Escola Secundária de Inhamissa, demonstrando viabilidade e benefícios da implementação de soluções digitais no contexto educacional moçambicano.`)
	b.pageBreak()
}

func bibliography(b *builder) {
	b.heading("Referências Bibliográficas", 1)
	b.references(
		"CASTELLS, M. (2003). A Galáxia Internet: Reflexões sobre Internet, Negócios e Sociedade. Lisboa: Fundação Calouste Gulbenkian.",
		"DUCKETT, J. (2014). HTML and CSS: Design and Build Websites. Indianapolis: John Wiley & Sons.",
		"KENSKI, V. M. (2012). Educação e Tecnologias: O Novo Ritmo da Informação. 8ª ed. Campinas: Papirus Editora.",
		"LÉVY, P. (1999). Cibercultura. São Paulo: Editora 34.",
		"MARCOTTE, E. (2011). Responsive Web Design. New York: A Book Apart.",
	)
}

func appendices(b *builder) {
	b.pageBreak()
	b.heading("Apêndices", 1)
	b.heading("Apêndice A - Métricas de Utilização do Portal", 2)
	b.table(usageMetrics, "Indicador", "Valor")
}
