package web

// adminScript управляет модальным редактором: CRUD через JSON API и
// загрузка картинок через /upload с меткой времени в имени файла
const adminScript = `
var modal = document.getElementById('editor-modal');
var form = document.getElementById('editor-form');

function openModal() { modal.style.display = 'block'; }

function closeModal() {
	modal.style.display = 'none';
	form.reset();
	document.getElementById('news-id').value = '';
	document.getElementById('editor-error').textContent = '';
}

document.getElementById('new-article').addEventListener('click', function () {
	closeModal();
	openModal();
});

document.getElementById('close-modal').addEventListener('click', closeModal);

Array.prototype.forEach.call(document.querySelectorAll('.edit-btn'), function (btn) {
	btn.addEventListener('click', function () {
		fetch('/articles/' + btn.dataset.id)
			.then(function (r) { return r.json(); })
			.then(function (res) {
				if (!res.success) { alert(res.error); return; }
				var n = res.data;
				document.getElementById('news-id').value = n.id;
				form.elements['title'].value = n.title;
				form.elements['summary'].value = n.summary || '';
				form.elements['content'].value = n.content;
				form.elements['image'].value = n.image || '';
				form.elements['video'].value = n.video || '';
				form.elements['isPro'].checked = !!n.isPro;
				openModal();
			});
	});
});

Array.prototype.forEach.call(document.querySelectorAll('.delete-btn'), function (btn) {
	btn.addEventListener('click', function () {
		if (!confirm('Delete this article?')) return;
		fetch('/articles?id=' + btn.dataset.id, { method: 'DELETE' })
			.then(function (r) { return r.json(); })
			.then(function (res) {
				if (res.success) { location.reload(); } else { alert(res.error); }
			});
	});
});

document.getElementById('upload-input').addEventListener('change', function () {
	var file = this.files[0];
	if (!file) return;
	// префикс с меткой времени снижает вероятность коллизий имён
	var name = Date.now() + '_' + file.name;
	fetch('/upload?filename=' + encodeURIComponent(name), {
		method: 'POST',
		headers: { 'Content-Type': file.type },
		body: file
	})
		.then(function (r) { return r.json(); })
		.then(function (res) {
			if (res.success) {
				form.elements['image'].value = res.url;
			} else {
				document.getElementById('editor-error').textContent = res.error;
			}
		});
});

form.addEventListener('submit', function (e) {
	e.preventDefault();
	var id = document.getElementById('news-id').value;
	var payload = {
		title: form.elements['title'].value,
		summary: form.elements['summary'].value,
		content: form.elements['content'].value,
		image: form.elements['image'].value || null,
		video: form.elements['video'].value || null,
		isPro: form.elements['isPro'].checked
	};
	fetch(id ? '/articles?id=' + id : '/articles', {
		method: id ? 'PUT' : 'POST',
		headers: { 'Content-Type': 'application/json' },
		body: JSON.stringify(payload)
	})
		.then(function (r) { return r.json(); })
		.then(function (res) {
			if (res.success) {
				location.reload();
			} else {
				document.getElementById('editor-error').textContent = res.error;
			}
		});
});
`
