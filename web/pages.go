package web

import (
	"fmt"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"github.com/tonipcv/adm-news/models"
)

const baseStyles = `body {
	font-family: sans-serif;
	font-size: 1.05rem;
	max-width: 52em;
	margin: 0 auto;
	padding: 1em;
}
a { color: #1a5276; }
.card { border-bottom: 1px solid #ddd; padding: 0.8em 0; }
.card img { max-width: 100%; }
.meta { color: #777; font-size: 0.85rem; }
.pro { background: #f4d03f; border-radius: 3px; padding: 0 0.4em; font-size: 0.8rem; }
table { border-collapse: collapse; width: 100%; }
td, th { border: 1px solid #ccc; padding: 0.4em; text-align: left; }
pre { white-space: pre-wrap; }
#editor-modal { display: none; position: fixed; top: 5%; left: 50%; transform: translateX(-50%);
	background: #fff; border: 1px solid #aaa; padding: 1em; width: 90%; max-width: 40em; z-index: 10; }
#editor-modal input[type=text], #editor-modal textarea { width: 100%; margin-bottom: 0.6em; }
#editor-error { color: #c0392b; }`

func basePage(title string, content ...g.Node) g.Node {
	return HTML(
		Head(
			Meta(g.Attr("charset", "utf-8")),
			Meta(g.Attr("name", "viewport"), g.Attr("content", "width=device-width, initial-scale=1")),
			TitleEl(g.Text(title)),
			StyleEl(g.Text(baseStyles)),
		),
		Body(content...),
	)
}

func newsCard(n models.News) g.Node {
	return Div(Class("card"),
		H2(
			A(Href(fmt.Sprintf("/news/%d", n.ID)), g.Text(n.Title)),
			g.If(n.IsPro, Span(Class("pro"), g.Text("PRO"))),
		),
		P(Class("meta"), g.Text(n.PublishedAt.Format("02 Jan 2006 15:04"))),
		g.If(n.Image != nil && *n.Image != "", Img(Src(derefOrEmpty(n.Image)), Alt(n.Title))),
		g.If(n.Summary != "", P(g.Text(n.Summary))),
	)
}

// HomeFeed — главная лента, свежие новости сверху
func HomeFeed(items []models.News) g.Node {
	return basePage("News",
		H1(g.Text("News")),
		P(A(Href("/admin"), g.Text("Admin"))),
		g.If(len(items) == 0, P(g.Text("No articles yet."))),
		g.Group(g.Map(items, newsCard)),
	)
}

// NewsArticle — страница одной новости. Markdown отдаётся как есть,
// рендеринг на клиенте вне контракта сервиса.
func NewsArticle(n models.News) g.Node {
	return basePage(n.Title,
		P(A(Href("/"), g.Text("← back"))),
		H1(
			g.Text(n.Title),
			g.If(n.IsPro, Span(Class("pro"), g.Text("PRO"))),
		),
		P(Class("meta"), g.Text(n.PublishedAt.Format("02 Jan 2006 15:04"))),
		g.If(n.Summary != "", P(g.Text(n.Summary))),
		g.If(n.Image != nil && *n.Image != "", Img(Src(derefOrEmpty(n.Image)), Alt(n.Title))),
		g.If(n.Video != nil && *n.Video != "",
			IFrame(
				Src(derefOrEmpty(n.Video)),
				Width("560"),
				Height("315"),
				g.Attr("allowfullscreen"),
			),
		),
		Pre(g.Text(n.Content)),
	)
}

// AdminConsole — таблица новостей с модальным редактором
func AdminConsole(items []models.News) g.Node {
	return basePage("Admin",
		H1(g.Text("Admin")),
		P(
			A(Href("/"), g.Text("← feed")),
			g.Text(" "),
			Button(ID("new-article"), g.Text("New article")),
		),
		Table(
			THead(Tr(
				Th(g.Text("ID")),
				Th(g.Text("Title")),
				Th(g.Text("Published")),
				Th(g.Text("Pro")),
				Th(g.Text("Actions")),
			)),
			TBody(g.Group(g.Map(items, adminRow))),
		),
		editorModal(),
		Script(g.Raw(adminScript)),
	)
}

func adminRow(n models.News) g.Node {
	return Tr(
		Td(g.Textf("%d", n.ID)),
		Td(A(Href(fmt.Sprintf("/news/%d", n.ID)), g.Text(n.Title))),
		Td(g.Text(n.PublishedAt.Format("02 Jan 2006 15:04"))),
		Td(g.If(n.IsPro, g.Text("yes"))),
		Td(
			Button(Class("edit-btn"), g.Attr("data-id", fmt.Sprintf("%d", n.ID)), g.Text("Edit")),
			g.Text(" "),
			Button(Class("delete-btn"), g.Attr("data-id", fmt.Sprintf("%d", n.ID)), g.Text("Delete")),
		),
	)
}

func editorModal() g.Node {
	return Div(ID("editor-modal"),
		H3(g.Text("Article")),
		FormEl(ID("editor-form"),
			Input(Type("hidden"), ID("news-id")),
			Label(g.Text("Title")),
			Input(Type("text"), Name("title")),
			Label(g.Text("Summary")),
			Input(Type("text"), Name("summary")),
			Label(g.Text("Content (markdown)")),
			Textarea(Name("content"), Rows("10")),
			Label(g.Text("Image URL")),
			Input(Type("text"), Name("image")),
			Label(g.Text("Upload image")),
			Input(Type("file"), ID("upload-input")),
			Label(g.Text("Video URL")),
			Input(Type("text"), Name("video")),
			Label(
				Input(Type("checkbox"), Name("isPro")),
				g.Text(" Pro content"),
			),
			P(ID("editor-error")),
			Button(Type("submit"), g.Text("Save")),
			g.Text(" "),
			Button(Type("button"), ID("close-modal"), g.Text("Cancel")),
		),
	)
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
